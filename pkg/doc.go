// Package pkg holds the libraries behind disksort.
//
// # Overview
//
// disksort solves the alternating disks problem: a row of 2n disks
// alternates dark and light, and adjacent swaps must move every light disk
// to the left. The packages are layered bottom-up:
//
//  1. [disks] - the row of disks and its predicates
//  2. [sorting] - the left-to-right and lawnmower algorithms
//  3. [render] - text, JSON, YAML, DOT, and SVG output of a sort
//  4. [pipeline] - sort and render with caching, plus algorithm comparison
//  5. [server] - the HTTP API over the pipeline
//
// Supporting packages: [cache] (file, redis, and null backends), [config]
// (TOML settings), [errors] (coded errors), [observability] (metric hooks),
// and [buildinfo].
//
// # Data Flow
//
//	row (lights or "D L D L")
//	     ↓
//	disks.State  →  sorting.Run  →  render artifacts
//	     ↑               ↓
//	   cache  ←  pipeline.Runner  →  CLI / HTTP
//
// [disks]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/disks
// [sorting]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/sorting
// [render]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/disksort/pkg/buildinfo
package pkg
