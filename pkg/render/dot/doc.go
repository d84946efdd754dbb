// Package dot renders shortest ancestral paths as Graphviz diagrams.
//
// # Usage
//
// Convert a path to DOT, then render it to SVG:
//
//	p, _ := wn.Path("dog", "idea")
//	src := dot.ToDOT(p, func(v int) string {
//	    s, _ := wn.Synset(v)
//	    return s.String()
//	}, dot.Options{})
//	svg, err := dot.RenderSVG(src)
//
// # Layout
//
// The generated DOT uses bottom-to-top layout (rankdir=BT) so hypernym
// edges point upwards and the common ancestor sits at the top. The
// ancestor is filled grey; the two query endpoints have a bold outline.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package dot
