// Package render turns a sorting run into output documents.
//
// # Formats
//
//   - text: a plain listing of the starting row, every pass, and the totals
//   - json: the run as indented JSON (see [sorting.Run])
//   - yaml: the same document as YAML
//   - dot:  a Graphviz digraph with one rank per recorded row
//   - svg:  the dot document laid out by Graphviz
//
// # Usage
//
//	run, err := sorting.Record("lawnmower", disks.MustNew(4))
//	if err != nil {
//		log.Fatal(err)
//	}
//	svg, err := render.Render(ctx, render.FormatSVG, run)
//
// The text, dot, and svg formats draw one line or rank per pass, so they are
// most useful with runs that carry steps. A run without steps is drawn as its
// starting and final rows only.
package render
