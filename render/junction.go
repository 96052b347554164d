// File: junction.go
// Role: junction tree to DotGraph conversion.

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlid/core"
	"github.com/katalvlaran/lvlid/inference"
	"github.com/katalvlaran/lvlid/model"
	"github.com/katalvlaran/lvlid/triangulation"
)

// JunctionTree converts jt into a DotGraph. name labels variables; root is
// highlighted (pass -1 for none).
func JunctionTree(jt *triangulation.JunctionTree, name func(core.NodeID) string, root core.NodeID, opts ...Option) (*DotGraph, error) {
	if jt == nil {
		return nil, ErrNilTree
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	g := &DotGraph{Title: o.Title, RankDir: o.RankDir}

	// 1. One node per clique
	nodes := make(map[core.NodeID]*DotNode, jt.Size())
	for _, c := range jt.Cliques() {
		members, err := jt.Clique(c)
		if err != nil {
			return nil, err
		}
		n := &DotNode{
			ID:    fmt.Sprintf("C%d", c),
			Attrs: DotAttrs{"label": fmt.Sprintf("C%d\n%s", c, names(members, name))},
		}
		if c == root {
			n.Attrs["fillcolor"] = "lightblue"
			n.Attrs["peripheries"] = "2"
		}
		nodes[c] = n
		g.Nodes = append(g.Nodes, n)
	}

	// 2. One edge per separator
	for _, e := range jt.Edges() {
		sep, err := jt.Separator(e.From, e.To)
		if err != nil {
			return nil, err
		}
		g.Edges = append(g.Edges, &DotEdge{
			From:  nodes[e.From],
			To:    nodes[e.To],
			Attrs: DotAttrs{"label": names(sep, name)},
		})
	}

	return g, nil
}

// FromEngine draws the strong junction tree of e, naming variables after id
// and highlighting the current root. The title defaults to the diagram name.
func FromEngine(e *inference.Engine, id *model.InfluenceDiagram, opts ...Option) (*DotGraph, error) {
	if e == nil || e.JunctionTree() == nil {
		return nil, ErrNilTree
	}
	name := func(n core.NodeID) string {
		v, err := id.Variable(n)
		if err != nil {
			return fmt.Sprint(int(n))
		}
		return v.Name()
	}
	opts = append([]Option{WithTitle(id.Name())}, opts...)

	return JunctionTree(e.JunctionTree(), name, e.Root(), opts...)
}

func names(s core.NodeSet, name func(core.NodeID) string) string {
	ids := s.Slice()
	parts := make([]string, len(ids))
	for i, n := range ids {
		parts[i] = name(n)
	}

	return "{" + strings.Join(parts, ",") + "}"
}
