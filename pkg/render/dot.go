package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/sorting"
)

// Disk fill colors.
const (
	lightFill = "white"
	darkFill  = "gray20"
)

// ToDOT converts a run to Graphviz DOT. Each recorded row becomes one rank
// of circles, read top to bottom: the starting row, then one rank per pass.
// Rank labels name the pass, its direction, and its swap count.
func ToDOT(run sorting.Run) string {
	var buf bytes.Buffer
	buf.WriteString("digraph disks {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fixedsize=true, width=0.4, label=\"\", style=filled, penwidth=1.5];\n")
	buf.WriteString("  edge [style=invis];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.15;\n")

	rows := []disks.State{run.Before}
	labels := []string{"start"}
	for _, st := range run.Steps {
		rows = append(rows, st.Row)
		labels = append(labels, fmt.Sprintf("%d %s (%d)", st.Pass, st.Direction, st.Swaps))
	}
	if len(run.Steps) == 0 && run.Result.Passes() > 0 {
		rows = append(rows, run.Result.After())
		labels = append(labels, "end")
	}

	for r, row := range rows {
		writeDOTRow(&buf, r, labels[r], row)
	}

	buf.WriteString("\n")
	for r := 1; r < len(rows); r++ {
		fmt.Fprintf(&buf, "  r%d -> r%d;\n", r-1, r)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTRow(buf *bytes.Buffer, r int, label string, row disks.State) {
	fmt.Fprintf(buf, "\n  { rank=same;\n")
	fmt.Fprintf(buf, "    r%d [shape=plaintext, fixedsize=false, style=\"\", label=%q, fontsize=10];\n", r, label)

	prev := fmt.Sprintf("r%d", r)
	for i, c := range row.Colors() {
		id := fmt.Sprintf("r%d_%d", r, i)
		fill := lightFill
		if c == disks.Dark {
			fill = darkFill
		}
		fmt.Fprintf(buf, "    %s [fillcolor=%s];\n", id, fill)
		fmt.Fprintf(buf, "    %s -> %s;\n", prev, id)
		prev = id
	}
	buf.WriteString("  }\n")
}

// RenderSVG lays out a DOT document with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so browsers scale the drawing.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
