package pipeline

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/disksort/pkg/cache"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/observability"
)

// memCache is an in-memory Cache that counts writes.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

// countingSortHooks records how many sorts actually ran.
type countingSortHooks struct {
	observability.NoopSortHooks
	mu    sync.Mutex
	runs  int
	codes []errors.Code
}

func (h *countingSortHooks) OnSortComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.runs++
	h.codes = append(h.codes, errors.GetCode(err))
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"lights", Options{LightCount: 3}, ""},
		{"row", Options{Row: "DLDL"}, ""},
		{"neither", Options{}, errors.ErrCodeInvalidLightCount},
		{"both", Options{LightCount: 2, Row: "DLDL"}, errors.ErrCodeInvalidInput},
		{"too many lights", Options{LightCount: errors.MaxLightCount + 1}, errors.ErrCodeInvalidLightCount},
		{"bad row", Options{Row: "DLX"}, errors.ErrCodeInvalidRow},
		{"row too long", Options{Row: strings.Repeat("DL", errors.MaxLightCount+1)}, errors.ErrCodeInvalidLightCount},
		{"row at limit", Options{Row: strings.Repeat("DL", errors.MaxLightCount)}, ""},
		{"bad algorithm", Options{Algorithm: "bubble", LightCount: 2}, errors.ErrCodeInvalidAlgorithm},
		{"bad format", Options{LightCount: 2, Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				require.NoError(t, err)
				assert.Equal(t, DefaultAlgorithm, tt.opts.Algorithm)
				assert.Equal(t, []string{DefaultFormat}, tt.opts.Formats)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "got %v", err)
		})
	}
}

func TestResultKeyOptsCanonicalRow(t *testing.T) {
	a := Options{Row: "DLDL"}
	b := Options{Row: "d l d l"}
	require.NoError(t, a.ValidateAndSetDefaults())
	require.NoError(t, b.ValidateAndSetDefaults())
	assert.Equal(t, a.ResultKeyOpts(), b.ResultKeyOpts())
	assert.Equal(t, "D L D L", a.ResultKeyOpts().Row)
}

func TestRunnerSortCaches(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &countingSortHooks{}
	observability.SetSortHooks(hooks)

	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()

	first, err := r.Sort(ctx, Options{Algorithm: "left-to-right", LightCount: 3})
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.SortHit)
	assert.Equal(t, 6, first.Run.Result.SwapCount())
	assert.Empty(t, first.Run.Steps, "untraced sorts record no steps")
	assert.NotEmpty(t, first.Hash)

	second, err := r.Sort(ctx, Options{Algorithm: "left-to-right", LightCount: 3})
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.SortHit)
	assert.Equal(t, first.Hash, second.Hash)
	assert.True(t, second.Run.Result.After().Equal(first.Run.Result.After()))
	assert.Equal(t, 1, hooks.runs, "second call should be served from cache")

	_, err = r.Sort(ctx, Options{Algorithm: "left-to-right", LightCount: 3, Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 2, hooks.runs, "refresh should bypass the cache")
}

func TestRunnerSortNotAlternating(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &countingSortHooks{}
	observability.SetSortHooks(hooks)

	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())

	_, err := r.Sort(context.Background(), Options{Row: "LDDL"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotAlternating))
	assert.Equal(t, []errors.Code{errors.ErrCodeNotAlternating}, hooks.codes)
	assert.Zero(t, c.sets, "failed sorts are not cached")
}

func TestRunnerSortCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil, quietLogger()).Sort(ctx, Options{LightCount: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerExecute(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Algorithm: "lawnmower", LightCount: 2, Formats: []string{"text", "json", "dot"}}

	report, err := r.Execute(ctx, opts)
	require.NoError(t, err)
	assert.Len(t, report.Run.Steps, 2, "Execute always records passes")
	assert.False(t, report.CacheInfo.RenderHit)
	assert.Contains(t, string(report.Artifacts["text"]), "swaps 3, passes 2, comparisons 5")
	assert.Contains(t, string(report.Artifacts["dot"]), "digraph disks")
	assert.Contains(t, string(report.Artifacts["json"]), `"swap_count": 3`)

	again, err := r.Execute(ctx, opts)
	require.NoError(t, err)
	assert.True(t, again.CacheInfo.SortHit)
	assert.True(t, again.CacheInfo.RenderHit)
	assert.Equal(t, report.Artifacts, again.Artifacts)
}

func TestRunnerCompare(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, quietLogger())

	rows, err := r.Compare(context.Background(), nil, 1, 8)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	for i, row := range rows {
		k := i + 1
		assert.Equal(t, k, row.LightCount)
		l2r := row.Results["left-to-right"]
		lm := row.Results["lawnmower"]
		assert.Equal(t, k*(k+1)/2, l2r.SwapCount())
		assert.Equal(t, l2r.SwapCount(), lm.SwapCount())
		assert.LessOrEqual(t, lm.Comparisons(), l2r.Comparisons())
	}
	assert.Equal(t, 120, rows[7].Results["left-to-right"].Comparisons())
	assert.Equal(t, 92, rows[7].Results["lawnmower"].Comparisons())
}

func TestRunnerCompareErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	_, err := r.Compare(ctx, nil, 5, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = r.Compare(ctx, nil, 0, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLightCount))

	_, err = r.Compare(ctx, nil, 1, MaxCompareSpan+1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = r.Compare(ctx, []string{"bubble"}, 1, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidAlgorithm))
}

func TestRunnerResultTTL(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	assert.Equal(t, cache.TTLResult, r.resultTTL())
	r.ResultTTL = time.Hour
	assert.Equal(t, time.Hour, r.resultTTL())
}
