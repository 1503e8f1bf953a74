package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPool_DefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
	if !p.IsRunning() {
		t.Error("new pool should be running")
	}
}

func TestExecuteAll_RunsEveryTask(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 100
	var count atomic.Int64
	tasks := make([]func(), n)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}

	p.ExecuteAll(tasks)

	if got := count.Load(); got != n {
		t.Errorf("executed %d tasks, want %d", got, n)
	}
}

func TestExecuteAll_Empty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	// Must not hang or panic.
	p.ExecuteAll(nil)
	p.ExecuteAll([]func(){})
}

func TestForEachBand_CoversAllRows(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const height = 123
	var mu sync.Mutex
	seen := make([]int, height)

	p.ForEachBand(height, func(y0, y1 int) {
		mu.Lock()
		defer mu.Unlock()
		for y := y0; y < y1; y++ {
			seen[y]++
		}
	})

	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d processed %d times, want exactly once", y, n)
		}
	}
}

func TestForEachBand_ZeroHeight(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	called := false
	p.ForEachBand(0, func(y0, y1 int) { called = true })
	if called {
		t.Error("band function called for zero height")
	}
}

func TestClose_Idempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	if p.IsRunning() {
		t.Error("pool still running after Close")
	}

	// Work after close is a silent no-op.
	p.ExecuteAll([]func(){func() { t.Error("task ran after Close") }})
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
	}{
		{"small", 16, 4},
		{"uneven", 1081, 8},
		{"tiny", 3, 8},
		{"single row", 1, 1},
		{"large", 2160, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitRows(tt.height, tt.workers)
			if len(bands) == 0 {
				t.Fatal("no bands produced")
			}

			y := 0
			for _, b := range bands {
				if b.Y0 != y {
					t.Fatalf("band starts at %d, want %d (gap or overlap)", b.Y0, y)
				}
				if b.Y1 <= b.Y0 {
					t.Fatalf("empty band %+v", b)
				}
				y = b.Y1
			}
			if y != tt.height {
				t.Fatalf("bands cover %d rows, want %d", y, tt.height)
			}
		})
	}
}

func TestSplitRows_NonPositiveHeight(t *testing.T) {
	if got := SplitRows(0, 4); got != nil {
		t.Errorf("SplitRows(0, 4) = %v, want nil", got)
	}
	if got := SplitRows(-5, 4); got != nil {
		t.Errorf("SplitRows(-5, 4) = %v, want nil", got)
	}
}
