package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordnet/pkg/sap"
)

// Options configures diagram generation.
type Options struct {
	// Detailed appends the vertex id to every label.
	Detailed bool
}

// ToDOT converts p to Graphviz DOT. label names each vertex; a nil label
// uses the vertex id. A path without an ancestor yields an empty graph.
func ToDOT(p sap.Path, label func(v int) string, opts Options) string {
	if label == nil {
		label = strconv.Itoa
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	if !p.Found() {
		buf.WriteString("}\n")
		return buf.String()
	}

	buf.WriteString("\n")
	walk := p.Vertices()
	for _, v := range walk {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(v, label, opts.Detailed))}
		if v == p.Ancestor {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		if v == walk[0] || v == walk[len(walk)-1] {
			attrs = append(attrs, "penwidth=3")
		}
		fmt.Fprintf(&buf, "  \"%d\" [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, leg := range [][]int{p.Source, p.Target} {
		for i := 0; i+1 < len(leg); i++ {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\";\n", leg[i], leg[i+1])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v int, label func(int) string, detailed bool) string {
	if !detailed {
		return label(v)
	}
	return fmt.Sprintf("%s\nid: %d", label(v), v)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag with one whose viewBox starts
// at the origin and whose size matches the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
