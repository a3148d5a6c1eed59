package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	derrors "github.com/matzehuels/disksort/pkg/errors"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSortHooks{}
	s.OnSortStart(ctx, "lawnmower", 6)
	s.OnSortComplete(ctx, "lawnmower", 6, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "result")
	c.OnCacheMiss(ctx, "result")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/v1/sort/{algorithm}", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Sort() should return NoopSortHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSort := &testSortHooks{}
	SetSortHooks(customSort)
	if Sort() != customSort {
		t.Error("SetSortHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Reset() should restore NoopSortHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testSortHooks{}
	SetSortHooks(custom)
	SetSortHooks(nil)

	if Sort() != custom {
		t.Error("SetSortHooks(nil) should be ignored")
	}
}

func TestPrometheusHooks(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)

	h.OnSortStart(ctx, "lawnmower", 6)
	h.OnSortComplete(ctx, "lawnmower", 6, time.Millisecond, nil)
	h.OnSortComplete(ctx, "lawnmower", 0, time.Millisecond,
		derrors.New(derrors.ErrCodeNotAlternating, "bad row"))
	h.OnSortComplete(ctx, "left-to-right", 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(h.SortsTotal.WithLabelValues("lawnmower", "success")); got != 1 {
		t.Errorf("success sorts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.SortsTotal.WithLabelValues("lawnmower", "NOT_ALTERNATING")); got != 1 {
		t.Errorf("NOT_ALTERNATING sorts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.SortsTotal.WithLabelValues("left-to-right", "error")); got != 1 {
		t.Errorf("uncoded error sorts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.SwapsTotal.WithLabelValues("lawnmower")); got != 6 {
		t.Errorf("swaps = %v, want 6", got)
	}

	h.OnCacheHit(ctx, "result")
	h.OnCacheMiss(ctx, "result")
	h.OnCacheMiss(ctx, "result")
	h.OnCacheSet(ctx, "artifact", 10)
	if got := testutil.ToFloat64(h.CacheEventsTotal.WithLabelValues("result", "miss")); got != 2 {
		t.Errorf("cache misses = %v, want 2", got)
	}

	h.OnRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
	if got := testutil.ToFloat64(h.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200")); got != 1 {
		t.Errorf("http requests = %v, want 1", got)
	}

	if n := testutil.CollectAndCount(h.SortDurationSeconds); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestPrometheusHooksDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusHooks(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering twice on one registry should panic")
		}
	}()
	NewPrometheusHooks(reg)
}

type testSortHooks struct{ NoopSortHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
