package station

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeSource serves a fixed JS snippet and counts fetches.
type fakeSource struct {
	js      string
	err     error
	fetches int32
}

func (f *fakeSource) StationNameJS(ctx context.Context) (string, error) {
	atomic.AddInt32(&f.fetches, 1)
	return f.js, f.err
}

const directoryJS = `var station_names = '@bj|北京|VNP|beijing|bj|0|0008|北京|||@bjn|北京南|VAP|beijingnan|bjn|1|0008|北京|||@sha|上海|AOH|shanghai|sha|2|0025|上海||';`

func newTestDirectory(t *testing.T) (*Directory, *fakeSource) {
	t.Helper()
	src := &fakeSource{js: directoryJS}
	return NewDirectory(src), src
}

func TestDirectory_ByTelecode(t *testing.T) {
	d, src := newTestDirectory(t)
	ctx := context.Background()

	s, err := d.ByTelecode(ctx, "VAP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Telecode != "VAP" || s.Name != "北京南" {
		t.Errorf("unexpected station: %+v", s)
	}

	if _, err := d.ByTelecode(ctx, "ZZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Second lookup must not refetch.
	if _, err := d.ByTelecode(ctx, "AOH"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.fetches != 1 {
		t.Errorf("station table should load once, loaded %d times", src.fetches)
	}
}

func TestDirectory_MissingStationPatch(t *testing.T) {
	d, _ := newTestDirectory(t)

	s, err := d.ByTelecode(context.Background(), "WEI")
	if err != nil {
		t.Fatalf("patched station should resolve: %v", err)
	}
	if s.City != "成都" {
		t.Errorf("unexpected patched record: %+v", s)
	}
}

func TestDirectory_StationsInCity(t *testing.T) {
	d, _ := newTestDirectory(t)
	ctx := context.Background()

	entries, err := d.StationsInCity(ctx, "北京")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 stations in 北京, got %d", len(entries))
	}
	if entries[0].StationCode != "VNP" || entries[1].StationCode != "VAP" {
		t.Errorf("insertion order not preserved: %+v", entries)
	}

	if _, err := d.StationsInCity(ctx, "婺源"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectory_CityCodes(t *testing.T) {
	d, _ := newTestDirectory(t)

	result, err := d.CityCodes(context.Background(), "北京|不存在")
	if err != nil {
		t.Fatalf("batch lookup must not fail outright: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}
	// Representative station is the one named exactly like the city.
	if result["北京"].StationCode != "VNP" {
		t.Errorf("expected VNP for 北京, got %+v", result["北京"])
	}
	if result["不存在"].Error == "" {
		t.Error("unmatched city should carry a per-entry error")
	}
}

func TestDirectory_StationCodes(t *testing.T) {
	d, _ := newTestDirectory(t)

	result, err := d.StationCodes(context.Background(), "北京南站|乌有")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Trailing 站 is stripped before lookup, and the stripped name
	// keys the result.
	if result["北京南"].StationCode != "VAP" {
		t.Errorf("expected VAP for 北京南站, got %+v", result["北京南"])
	}
	if result["乌有"].Error == "" {
		t.Error("miss should not abort the other lookups")
	}
}

func TestDirectory_FailureIsRetried(t *testing.T) {
	src := &fakeSource{err: errors.New("upstream down")}
	d := NewDirectory(src)
	ctx := context.Background()

	if _, err := d.ByTelecode(ctx, "VNP"); err == nil {
		t.Fatal("expected load failure")
	}

	src.err = nil
	src.js = directoryJS
	if _, err := d.ByTelecode(ctx, "VNP"); err != nil {
		t.Fatalf("load should retry after failure: %v", err)
	}
	if src.fetches != 2 {
		t.Errorf("expected 2 fetch attempts, got %d", src.fetches)
	}
}

func TestDirectory_ConcurrentLoadsCoalesce(t *testing.T) {
	d, src := newTestDirectory(t)

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.ByTelecode(context.Background(), "AOH"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if src.fetches != 1 {
		t.Errorf("concurrent callers should share one load, got %d", src.fetches)
	}
}
