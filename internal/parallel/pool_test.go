package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if got := counter.Load(); got != 2 {
		t.Errorf("counter = %d, want 2 (closed pool runs inline)", got)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_Nil(t *testing.T) {
	var pool *WorkerPool

	if pool.Workers() != 1 {
		t.Errorf("nil Workers() = %d, want 1", pool.Workers())
	}
	pool.Close()

	calls := 0
	pool.Rows(10, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 10 {
			t.Errorf("Rows band = [%d,%d), want [0,10)", lo, hi)
		}
	})
	if calls != 1 {
		t.Errorf("nil pool ran %d bands, want 1", calls)
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name      string
		rows, n   int
		wantBands int
	}{
		{"empty", 0, 4, 0},
		{"short", 10, 4, 1},
		{"exact", 64, 4, 4},
		{"uneven", 100, 3, 3},
		{"capped by min rows", 40, 8, 2},
		{"zero workers", 50, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitRows(tt.rows, tt.n)
			if len(bands) != tt.wantBands {
				t.Fatalf("SplitRows(%d, %d) = %d bands, want %d", tt.rows, tt.n, len(bands), tt.wantBands)
			}
			next := 0
			for _, b := range bands {
				if b.Lo != next {
					t.Errorf("band starts at %d, want %d", b.Lo, next)
				}
				if b.Hi <= b.Lo {
					t.Errorf("empty band %+v", b)
				}
				next = b.Hi
			}
			if len(bands) > 0 && next != tt.rows {
				t.Errorf("bands end at %d, want %d", next, tt.rows)
			}
		})
	}
}

func TestWorkerPool_RowsCoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const rows = 203
	var mu sync.Mutex
	seen := make([]int, rows)

	pool.Rows(rows, func(lo, hi int) {
		mu.Lock()
		defer mu.Unlock()
		for y := lo; y < hi; y++ {
			seen[y]++
		}
	})

	for y, n := range seen {
		if n != 1 {
			t.Errorf("row %d visited %d times, want 1", y, n)
		}
	}
}

func TestDefault(t *testing.T) {
	a, b := Default(), Default()
	if a != b {
		t.Error("Default() should return the same pool")
	}
	if !a.IsRunning() {
		t.Error("Default() pool should be running")
	}
}

func TestWorkerPool_ExecuteAllRacingClose(t *testing.T) {
	for range 100 {
		p := NewWorkerPool(2)

		var ran atomic.Int32
		work := make([]func(), 64)
		for i := range work {
			work[i] = func() { ran.Add(1) }
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			p.ExecuteAll(work)
		}()
		p.Close()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("ExecuteAll did not return after Close")
		}
		if got := ran.Load(); got != int32(len(work)) {
			t.Fatalf("ran %d items, want %d", got, len(work))
		}
	}
}
