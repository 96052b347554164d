// File: graphviz.go
// Role: layout through the embedded Graphviz library.

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render writes g to w in format. FormatDOT writes the source unchanged.
func Render(g *DotGraph, format Format, w io.Writer) error {
	if format == FormatDOT {
		return g.WriteDot(w)
	}
	return withGraphviz(g, format, func(gv *graphviz.Graphviz, parsed *cgraph.Graph) error {
		return gv.Render(parsed, graphviz.Format(format), w)
	})
}

// RenderFile writes g to path in format.
func RenderFile(g *DotGraph, format Format, path string) error {
	if format == FormatDOT {
		src, err := g.Bytes()
		if err != nil {
			return err
		}
		return os.WriteFile(path, src, 0o644)
	}
	return withGraphviz(g, format, func(gv *graphviz.Graphviz, parsed *cgraph.Graph) error {
		return gv.RenderFilename(parsed, graphviz.Format(format), path)
	})
}

func withGraphviz(g *DotGraph, format Format, fn func(*graphviz.Graphviz, *cgraph.Graph) error) (err error) {
	if _, err = ParseFormat(string(format)); err != nil {
		return err
	}
	src, err := g.Bytes()
	if err != nil {
		return err
	}
	gv := graphviz.New()
	parsed, err := graphviz.ParseBytes(src)
	if err != nil {
		_ = gv.Close()
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer func() {
		if cerr := parsed.Close(); cerr != nil && err == nil {
			err = cerr
		}
		_ = gv.Close()
	}()

	return fn(gv, parsed)
}
