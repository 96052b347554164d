// File: nodeset.go
// Role: NodeSet, a small set of node identifiers with deterministic output.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// NodeSet is a set of node identifiers. The zero value is not usable; build
// one with NewNodeSet.
type NodeSet map[NodeID]struct{}

// NewNodeSet returns a set containing ids.
func NewNodeSet(ids ...NodeID) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id into the set.
func (s NodeSet) Add(id NodeID) { s[id] = struct{}{} }

// Remove deletes id from the set.
func (s NodeSet) Remove(id NodeID) { delete(s, id) }

// Has reports whether id is a member.
func (s NodeSet) Has(id NodeID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// Slice returns the members sorted ascending.
func (s NodeSet) Slice() []NodeID {
	return sortedKeys(s)
}

// Clone returns an independent copy of the set.
func (s NodeSet) Clone() NodeSet {
	out := make(NodeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns the members shared by s and other.
func (s NodeSet) Intersect(other NodeSet) NodeSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(NodeSet)
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether every member of s belongs to other.
func (s NodeSet) SubsetOf(other NodeSet) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold the same members.
func (s NodeSet) Equal(other NodeSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// String renders the set as "{1,2,3}".
func (s NodeSet) String() string {
	ids := s.Slice()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(int(id))
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// SortNodes sorts ids ascending in place and returns the slice.
func SortNodes(ids []NodeID) []NodeID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
