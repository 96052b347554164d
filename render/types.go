// Package render defines formats, options and sentinel errors.
package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilTree is returned when no junction tree is given.
	ErrNilTree = errors.New("render: junction tree is nil")

	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("render: unknown format")
)

// Format is an output format.
type Format string

// Supported formats.
const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "dot", "svg" and "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures graph construction.
type Options struct {
	// Title labels the graph. FromEngine defaults it to the diagram name.
	Title string

	// RankDir is the Graphviz layout direction ("TB", "LR", ...).
	RankDir string
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns top-to-bottom layout with no title.
func DefaultOptions() Options {
	return Options{RankDir: "TB"}
}

// WithTitle sets the graph title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithRankDir sets the layout direction.
func WithRankDir(dir string) Option {
	return func(o *Options) { o.RankDir = dir }
}
