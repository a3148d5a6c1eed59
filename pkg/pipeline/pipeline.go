// Package pipeline runs disk sorts with caching, metrics, and rendering.
//
// The CLI and the HTTP server both go through a [Runner] so that cache keys,
// validation, and observability hooks behave the same everywhere.
//
// # Stages
//
//  1. Sort: build the starting row, run the algorithm, record passes
//  2. Render: turn the run into the requested formats
//
// Both stages are cached. A sort is keyed by its input (algorithm plus
// light count or row); an artifact is keyed by the hash of the sort it
// was drawn from plus its format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	report, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm:  "lawnmower",
//	    LightCount: 8,
//	    Formats:    []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := report.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/disksort/pkg/cache"
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/render"
	"github.com/matzehuels/disksort/pkg/sorting"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultAlgorithm is used when Options.Algorithm is empty.
	DefaultAlgorithm = string(sorting.Lawnmower)

	// DefaultFormat is used when Options.Formats is empty.
	DefaultFormat = render.FormatText

	// MaxCompareSpan bounds the number of light counts one Compare call covers.
	MaxCompareSpan = 256
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options describes one sort. Exactly one of LightCount and Row is set.
// This struct supports JSON serialization for API requests.
type Options struct {
	Algorithm  string   `json:"algorithm,omitempty"`
	LightCount int      `json:"lights,omitempty"`
	Row        string   `json:"row,omitempty"` // e.g. "D L D L" or "DLDL"
	Formats    []string `json:"formats,omitempty"`
	Trace      bool     `json:"trace,omitempty"` // record every pass
	Refresh    bool     `json:"refresh,omitempty"`

	before    disks.State
	validated bool
}

// Report is the outcome of a pipeline run.
type Report struct {
	// Run is the sort with its starting row and, if traced, its passes.
	Run sorting.Run

	// Hash is the content hash of the encoded run. It keys artifacts.
	Hash string

	// Artifacts holds rendered outputs keyed by format. Empty after Sort.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline timing.
type Stats struct {
	SortTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	SortHit   bool // Whether the run came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options, applies defaults, and builds the
// starting row. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errors.ValidateAlgorithm(o.Algorithm, sorting.Names()); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, render.Formats()); err != nil {
			return err
		}
	}

	switch {
	case o.LightCount != 0 && o.Row != "":
		return errors.New(errors.ErrCodeInvalidInput, "lights and row are mutually exclusive")
	case o.Row != "":
		before, err := disks.Parse(o.Row)
		if err != nil {
			return err
		}
		if err := errors.ValidateLightCount(before.LightCount()); err != nil {
			return err
		}
		o.before = before
	default:
		if err := errors.ValidateLightCount(o.LightCount); err != nil {
			return err
		}
		before, err := disks.New(o.LightCount)
		if err != nil {
			return err
		}
		o.before = before
	}

	o.validated = true
	return nil
}

// SetDefaults fills in the algorithm and output format.
func (o *Options) SetDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
}

// Before returns the starting row. It is empty until ValidateAndSetDefaults succeeds.
func (o *Options) Before() disks.State {
	return o.before.Clone()
}

// ResultKeyOpts returns cache key options for the sort stage. Rows are keyed
// in canonical form so "DLDL" and "D L D L" share an entry.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	opts := cache.ResultKeyOpts{Trace: o.Trace}
	if o.Row != "" {
		opts.Row = o.before.String()
	} else {
		opts.LightCount = o.LightCount
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}
