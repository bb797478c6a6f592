// Package render turns mind maps into Graphviz diagrams.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/canopymap/canopy/pkg/mindmap"
)

// Options configures diagram rendering.
type Options struct {
	// ShowIcons appends icon names to node labels.
	ShowIcons bool

	// HighlightSelection fills the selected node to make the cursor
	// visible in exported images.
	HighlightSelection bool
}

// ToDOT converts a mind map to Graphviz DOT format. The graph flows left
// to right, matching how the layout engine places children to the right
// of their parent. The resulting DOT string can be rendered with
// [RenderSVG] or [RenderPNG].
func ToDOT(m *mindmap.Map, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	m.Walk(func(n *mindmap.Node, depth int) {
		attrs := fmtAttrs(n, m, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	})

	buf.WriteString("\n")
	m.Walk(func(n *mindmap.Node, depth int) {
		for _, childID := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID, childID)
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *mindmap.Node, m *mindmap.Map, opts Options) []string {
	label := n.Content
	if opts.ShowIcons && len(n.Icons) > 0 {
		label += "\n[" + strings.Join(n.Icons, " ") + "]"
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.ID == m.RootID {
		attrs = append(attrs, "fillcolor=lightyellow", "fontsize=18")
	}
	if opts.HighlightSelection && n.ID == m.SelectedID {
		attrs = append(attrs, "color=steelblue", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderAs(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderAs(dot, graphviz.PNG)
}

func renderAs(dot string, fmtName graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, fmtName, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if fmtName == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg element so the image scales cleanly
// when embedded in a page.
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
