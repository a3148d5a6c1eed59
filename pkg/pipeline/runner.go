package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/disksort/pkg/cache"
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/observability"
	"github.com/matzehuels/disksort/pkg/render"
	"github.com/matzehuels/disksort/pkg/sorting"
)

// Cache key types reported to observability hooks.
const (
	keyTypeResult   = "result"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// ResultTTL overrides cache.TTLResult when positive.
	ResultTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute sorts and renders every format in opts.Formats. Passes are always
// recorded because the renderers draw them.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Report, error) {
	opts.Trace = true
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	report, err := r.Sort(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, report, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	report.Artifacts = artifacts
	report.Stats.RenderTime = time.Since(renderStart)
	report.CacheInfo.RenderHit = hit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", report.Stats.RenderTime)

	return report, nil
}

// Sort runs one sort, consulting the cache first unless opts.Refresh is set.
func (r *Runner) Sort(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := r.Keyer.ResultKey(opts.Algorithm, opts.ResultKeyOpts())

	if !opts.Refresh {
		if report, ok := r.cachedRun(ctx, key); ok {
			report.Stats.SortTime = time.Since(start)
			return report, nil
		}
	}

	before := opts.Before()
	hooks := observability.Sort()
	hooks.OnSortStart(ctx, opts.Algorithm, before.TotalCount())

	run, err := runSort(opts.Algorithm, before, opts.Trace)
	hooks.OnSortComplete(ctx, opts.Algorithm, run.Result.SwapCount(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(run)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode run")
	}
	if err := r.Cache.Set(ctx, key, data, r.resultTTL()); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeResult, len(data))
	}

	report := &Report{
		Run:   run,
		Hash:  cache.Hash(data),
		Stats: Stats{SortTime: time.Since(start)},
	}
	r.Logger.Debug("sorted",
		"algorithm", opts.Algorithm,
		"disks", before.TotalCount(),
		"swaps", run.Result.SwapCount(),
		"passes", run.Result.Passes(),
		"duration", report.Stats.SortTime)

	return report, nil
}

func (r *Runner) resultTTL() time.Duration {
	if r.ResultTTL > 0 {
		return r.ResultTTL
	}
	return cache.TTLResult
}

func (r *Runner) cachedRun(ctx context.Context, key string) (*Report, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeResult)
		return nil, false
	}

	var run sorting.Run
	if err := json.Unmarshal(data, &run); err != nil {
		// Undecodable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, keyTypeResult)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeResult)

	return &Report{
		Run:       run,
		Hash:      cache.Hash(data),
		CacheInfo: CacheInfo{SortHit: true},
	}, true
}

func runSort(algorithm string, before disks.State, trace bool) (sorting.Run, error) {
	if trace {
		return sorting.Record(algorithm, before)
	}
	res, err := sorting.Sort(algorithm, before)
	if err != nil {
		return sorting.Run{}, err
	}
	return sorting.Run{Before: before, Result: res}, nil
}

// RenderWithCacheInfo renders report in every format of opts and reports
// whether all of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, report *Report, opts Options) (map[string][]byte, bool, error) {
	opts.SetDefaults()

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(report.Hash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		allCached = false

		data, err := render.Render(ctx, format, report.Run)
		if err != nil {
			return nil, false, err
		}
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
		artifacts[format] = data
	}

	return artifacts, allCached, nil
}

// =============================================================================
// Compare
// =============================================================================

// Comparison holds the result of every algorithm for one light count.
type Comparison struct {
	LightCount int                       `json:"lights"`
	Results    map[string]sorting.Result `json:"results"`
}

// Compare sorts the rows for every light count in [from, to] with each of
// algorithms. Light counts are processed concurrently; each sort still owns
// its row. Comparisons are returned in ascending light count.
func (r *Runner) Compare(ctx context.Context, algorithms []string, from, to int) ([]Comparison, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if len(algorithms) == 0 {
		algorithms = sorting.Names()
	}
	for _, alg := range algorithms {
		if err := errors.ValidateAlgorithm(alg, sorting.Names()); err != nil {
			return nil, err
		}
	}

	out := make([]Comparison, to-from+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k := from; k <= to; k++ {
		g.Go(func() error {
			row := Comparison{LightCount: k, Results: make(map[string]sorting.Result, len(algorithms))}
			for _, alg := range algorithms {
				report, err := r.Sort(ctx, Options{Algorithm: alg, LightCount: k})
				if err != nil {
					return fmt.Errorf("%s with %d lights: %w", alg, k, err)
				}
				row.Results[alg] = report.Run.Result
			}
			out[k-from] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Debug("compared algorithms", "algorithms", algorithms, "from", from, "to", to)
	return out, nil
}

func validateRange(from, to int) error {
	if err := errors.ValidateLightCount(from); err != nil {
		return err
	}
	if err := errors.ValidateLightCount(to); err != nil {
		return err
	}
	if from > to {
		return errors.New(errors.ErrCodeInvalidInput, "range start %d is after end %d", from, to)
	}
	if to-from+1 > MaxCompareSpan {
		return errors.New(errors.ErrCodeInvalidInput, "range covers %d light counts (max %d)", to-from+1, MaxCompareSpan)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
