package taa

import (
	"math"
	"testing"
)

func TestHaltonValue_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		index int
		base  int
		want  float32
	}{
		{"zero base2", 0, 2, 0},
		{"first base2", 1, 2, 0.5},
		{"second base2", 2, 2, 0.25},
		{"third base2", 3, 2, 0.75},
		{"first base3", 1, 3, 1.0 / 3},
		{"second base3", 2, 3, 2.0 / 3},
		{"third base3", 3, 3, 1.0 / 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haltonValue(tt.index, tt.base)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("haltonValue(%d, %d) = %v, want %v", tt.index, tt.base, got, tt.want)
			}
		})
	}
}

func TestHaltonSequence_SkipsDegenerateSample(t *testing.T) {
	// Raw index 0 is the zero offset, which after centering would be
	// (-0.5, -0.5). The sequence starts at raw index 1, so that value
	// never appears.
	var seq haltonSequence
	for i := 0; i < JitterPeriod; i++ {
		x, y := seq.Offset(i)
		if x == -0.5 && y == -0.5 {
			t.Fatalf("offset %d is the degenerate raw-zero sample", i)
		}
	}
}

func TestHaltonSequence_Range(t *testing.T) {
	var seq haltonSequence
	for i := 0; i < 64; i++ {
		x, y := seq.Offset(i)
		if x < -0.5 || x > 0.5 || y < -0.5 || y > 0.5 {
			t.Errorf("offset %d = (%v, %v), outside [-0.5, 0.5]", i, x, y)
		}
	}
}

func TestHaltonSequence_Deterministic(t *testing.T) {
	var seq haltonSequence
	for i := 0; i < JitterPeriod; i++ {
		x1, y1 := seq.Offset(i)
		x2, y2 := seq.Offset(i)
		if x1 != x2 || y1 != y2 {
			t.Fatalf("offset %d not deterministic: (%v,%v) vs (%v,%v)", i, x1, y1, x2, y2)
		}
	}
}

func TestJitterState_PeriodAndDistinctness(t *testing.T) {
	var js jitterState
	seq := haltonSequence{}

	type offset struct{ x, y float32 }
	seen := make(map[offset]int)

	first := make([]offset, JitterPeriod)
	for i := 0; i < JitterPeriod; i++ {
		o := js.advance(seq, 1)
		first[i] = offset{o[0], o[1]}
		seen[first[i]]++
	}
	if len(seen) != JitterPeriod {
		t.Fatalf("got %d distinct offsets in one period, want %d", len(seen), JitterPeriod)
	}

	// The second period repeats the first exactly.
	for i := 0; i < JitterPeriod; i++ {
		o := js.advance(seq, 1)
		if (offset{o[0], o[1]}) != first[i] {
			t.Fatalf("offset %d of second period = %v, want %v", i, o, first[i])
		}
	}
}

func TestJitterState_SpreadScaling(t *testing.T) {
	var a, b jitterState
	seq := haltonSequence{}

	oa := a.advance(seq, 1)
	ob := b.advance(seq, 0.5)
	if math.Abs(float64(ob[0]-oa[0]*0.5)) > 1e-6 || math.Abs(float64(ob[1]-oa[1]*0.5)) > 1e-6 {
		t.Errorf("spread 0.5 offset = %v, want half of %v", ob, oa)
	}
}

func TestGenerateJitter_AdvancesOncePerCall(t *testing.T) {
	ta := New(WithWorkers(1))
	defer ta.Release()

	x1, y1 := ta.GenerateJitter()
	jx, jy := ta.Jitter()
	if jx != x1 || jy != y1 {
		t.Errorf("Jitter() = (%v,%v), want the generated (%v,%v)", jx, jy, x1, y1)
	}

	// Jitter is a pure read; Generate advances.
	jx2, jy2 := ta.Jitter()
	if jx2 != x1 || jy2 != y1 {
		t.Error("Jitter() advanced the sequence")
	}
	x2, y2 := ta.GenerateJitter()
	if x2 == x1 && y2 == y1 {
		t.Error("GenerateJitter returned the same offset twice in a row")
	}
}

func TestProjectionOffset(t *testing.T) {
	ta := New(WithWorkers(1))
	defer ta.Release()

	x, y := ta.GenerateJitter()
	px, py := ta.ProjectionOffset(1920, 1080)
	if math.Abs(float64(px-x*2/1920)) > 1e-9 || math.Abs(float64(py-y*2/1080)) > 1e-9 {
		t.Errorf("ProjectionOffset = (%v,%v), want (%v,%v)", px, py, x*2/1920, y*2/1080)
	}

	if px, py := ta.ProjectionOffset(0, 0); px != 0 || py != 0 {
		t.Errorf("ProjectionOffset(0,0) = (%v,%v), want zero", px, py)
	}
}
