// Package taa implements temporal antialiasing for a real-time renderer.
//
// The stage accumulates a history of previously resolved frames and blends
// each new frame's color against a motion-compensated, neighborhood-clamped
// history sample, suppressing aliasing and temporal flicker without the
// ghosting a naive accumulation would show.
//
// # Frame loop
//
// The host owns rendering; this package owns the resolve. Each frame:
//
//	t := taa.New()
//	...
//	jx, jy := t.GenerateJitter()                  // once per frame
//	// offset the projection matrix by t.ProjectionOffset(w, h)
//	// render color and motion vectors
//	err := t.Resolve(taa.ResolveInput{Color: color, Motion: motion}, output)
//
// The jitter offset generated for a frame both jitters that frame's
// projection matrix and de-jitters the neighborhood reconstruction when
// the frame is resolved, so GenerateJitter must be called exactly once per
// frame regardless of how many eyes are resolved.
//
// # Resolve pipeline
//
// For every output pixel the kernel gathers the 3x3 current-frame
// neighborhood, builds a per-channel color box (in YCoCg by default),
// reconstructs a filtered current color with a jitter-compensated
// Catmull-Rom kernel, reprojects into the previous frame along the motion
// vector, samples history with an optimized 5-tap bicubic filter, clamps
// the history sample into the color box with a ray-box intersection, and
// blends with a motion-adaptive history weight.
//
// History lives in a ping-ponged buffer pair per eye, seeded from the
// first frame, stretch-blitted across resizes, and reseeded after
// ResetHistory (camera cuts, scene loads).
//
// # Logging
//
// The package is silent by default; see SetLogger.
package taa
