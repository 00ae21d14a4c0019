// Package wire3d rotates, projects and incrementally redraws a 3D wireframe on a
// small raster panel.
//
// Pipeline (fixed, once per tick):
//
//	Touch → Orientation → Rotation matrix → Zoom → Projection → Differential redraw.
//
// The package does no pixel work itself. Drawing goes through a Surface and touch
// samples come from a TouchSource; both are provided by the caller so the math can
// run (and be tested) without hardware.
//
// Redraw strategy:
//
// Instead of clearing the panel every frame, the previous frame's segments are
// redrawn in the background color and the new segments are drawn on top. Two
// generations of projected edges are kept, positionally correlated with the model's
// edges, and swapped at the end of every frame.
package wire3d
