// File: dot.go
// Role: DOT document model and its text/template writer.

package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
)

const tmplNode = `{{define "node" -}}
{{printf "%q [ %s ];" .ID .Attrs}}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
{{printf "%q -- %q [ %s ];" .From.ID .To.ID .Attrs}}
{{- end}}`

const tmplGraph = `graph {{printf "%q" .Title}} {
	label={{printf "%q" .Title}};
	rankdir={{printf "%q" .RankDir}};
	node [shape="box" style="rounded,filled" fillcolor="honeydew" fontname="Verdana"];
{{- range .Nodes}}
	{{template "node" .}}
{{- end}}
{{- range .Edges}}
	{{template "edge" .}}
{{- end}}
}
`

// DotNode is a graph vertex.
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// DotEdge is an undirected edge.
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// DotAttrs holds Graphviz attributes.
type DotAttrs map[string]string

// List returns `key="value"` pairs sorted by key.
func (p DotAttrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	l := make([]string, len(keys))
	for i, k := range keys {
		l[i] = fmt.Sprintf("%s=%q", k, p[k])
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

// DotGraph is an undirected Graphviz document.
type DotGraph struct {
	Title   string
	RankDir string
	Nodes   []*DotNode
	Edges   []*DotEdge
}

// WriteDot writes the Graphviz source of g to w.
func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	for _, s := range []string{tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Bytes returns the Graphviz source of g.
func (g *DotGraph) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
