package taa

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestGatherNeighborhood_AverageExcludesCorners(t *testing.T) {
	src, err := NewBuffer(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Cross taps at 1, corners at 10: a plus-shaped mean stays at 1 while
	// a full 3x3 mean would be dragged to 5.
	cross := f32.Vec4{1, 1, 1, 1}
	corner := f32.Vec4{10, 10, 10, 1}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 1 && y != 1 {
				src.Set(x, y, corner)
			} else {
				src.Set(x, y, cross)
			}
		}
	}

	n := gatherNeighborhood(src, 1, 1, f32.Vec2{}, ClampRGB)
	if !approxVec(n.average, cross, 1e-5) {
		t.Errorf("sharpening average = %v, want plus-shaped mean %v", n.average, cross)
	}
}

func TestGatherNeighborhood_BoxSpansAllNineTaps(t *testing.T) {
	src, err := NewBuffer(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	src.Fill(f32.Vec4{0.5, 0.5, 0.5, 1})
	// The color box, unlike the sharpening mean, must still see corners.
	src.Set(0, 0, f32.Vec4{0.9, 0.9, 0.9, 1})
	src.Set(2, 2, f32.Vec4{0.1, 0.1, 0.1, 1})

	n := gatherNeighborhood(src, 1, 1, f32.Vec2{}, ClampRGB)
	if !approxVec(n.boxMin, f32.Vec4{0.1, 0.1, 0.1, 1}, 1e-6) {
		t.Errorf("boxMin = %v, want corner minimum", n.boxMin)
	}
	if !approxVec(n.boxMax, f32.Vec4{0.9, 0.9, 0.9, 1}, 1e-6) {
		t.Errorf("boxMax = %v, want corner maximum", n.boxMax)
	}
}
