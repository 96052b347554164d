// Package render draws junction trees.
//
// JunctionTree and FromEngine build a DotGraph: one box per clique labelled
// with its id and variables, one edge per separator, the root doubled and
// highlighted. WriteDot emits Graphviz source through text/template; Render
// and RenderFile lay it out with the embedded Graphviz library (svg, png)
// or pass the source through (dot).
//
// Output is deterministic: nodes, edges and attributes are sorted.
package render
