// Package prim is a primitive-level 2D rasterization and compositing core
// for retained-mode UI renderers.
//
// # Overview
//
// prim evaluates batches of typed geometric primitives — filled and bordered
// rounded rectangles, glyph and image sprites, soft shadows, filled vector
// paths, and straight or wavy underlines — producing an anti-aliased color
// and coverage value for every covered output pixel. Contributions are
// composited against a frame buffer with alpha blending that respects
// premultiplication and a rectangular clip mask.
//
// Coverage is analytic: each primitive type has a closed-form per-pixel
// evaluator (signed distance fields for rounded quads, an erf-based Gaussian
// approximation for box shadows, implicit quadratic-bezier curves for vector
// paths) rather than multisampling. All evaluation is float32, matching the
// numerics of the GPU fragment pipelines this package mirrors.
//
// # Quick Start
//
//	dst := prim.NewPixmap(800, 600)
//	r := prim.NewRenderer()
//	defer r.Close()
//
//	quads := []prim.Quad{{
//	    Bounds:      prim.NewBounds(10, 10, 200, 100),
//	    ContentMask: prim.NewBounds(0, 0, 800, 600),
//	    Background:  prim.SolidBackground(prim.Hsla{H: 0.6, S: 0.8, L: 0.5, A: 1}),
//	    CornerRadii: prim.Corners{TopLeft: 8, TopRight: 8, BottomRight: 8, BottomLeft: 8},
//	}}
//	r.DrawQuads(dst, prim.DefaultParams(), quads)
//	dst.SavePNG("out.png")
//
// # Architecture
//
// The package is organized as four foundational layers and six primitive
// pipelines:
//   - Color: Hsla→RGBA, sRGB↔linear, linear↔Oklab conversions (color.go)
//   - Geometry/clip: device projection and clip-rect distances (geometry.go)
//   - Blend: premultiplication-aware coverage scaling and "over" (blend.go)
//   - SDF: quadrant radius selection and rounded-rect distances (sdf.go)
//   - Pipelines: Quad, MonochromeSprite, PolychromeSprite, Shadow, Path,
//     Underline — each a geometry-expansion stage plus a per-pixel evaluator
//
// The Renderer schedules evaluation across 64x64 pixel tiles in parallel;
// within a tile, primitives composite strictly in submission order, so the
// painter's-algorithm ordering established by the caller is preserved.
//
// # Inputs
//
// Primitive records are flat, read-only values produced once per frame by an
// external batching layer and consumed by index. Sprite pixels come from an
// external atlas, abstracted as a normalized-coordinate sampler (Atlas).
// Per-frame globals (viewport size, premultiplied-alpha flag) travel in a
// Params value threaded through every draw call; there is no ambient state.
package prim
