package memo

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCell_CachesSuccess(t *testing.T) {
	var c Cell[int]
	var calls int32

	for i := 0; i < 3; i++ {
		v, err := c.Get(func() (int, error) {
			atomic.AddInt32(&calls, 1)
			return 42, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 42 {
			t.Fatalf("expected 42, got %d", v)
		}
	}
	if calls != 1 {
		t.Errorf("loader should run once, ran %d times", calls)
	}
	if !c.Ready() {
		t.Error("cell should report ready after success")
	}
}

func TestCell_FailureIsRetryable(t *testing.T) {
	var c Cell[string]
	boom := errors.New("boom")
	var calls int32

	_, err := c.Get(func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if c.Ready() {
		t.Fatal("failed load must not be cached")
	}

	v, err := c.Get(func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("retry should succeed, got %q, %v", v, err)
	}
	if calls != 2 {
		t.Errorf("expected 2 loader runs, got %d", calls)
	}
}

func TestCell_ConcurrentCallersShareOneFlight(t *testing.T) {
	var c Cell[int]
	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(func() (int, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return 7, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("expected a single in-flight load, got %d", calls)
	}
	for i, v := range results {
		if v != 7 {
			t.Errorf("caller %d got %d, want 7", i, v)
		}
	}
}
