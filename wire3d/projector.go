package wire3d

import (
	"errors"
	"fmt"
	"math"
)

var ErrEdgeCount = errors.New("wire3d: edge count mismatch")

const (
	// FocalLength scales the perspective divide.
	FocalLength = 256

	// NearLimit is the camera-relative depth an endpoint must stay below to be
	// projected.
	NearLimit = -5
)

// Point2D is a screen coordinate.
type Point2D struct {
	X, Y int
}

// Edge2D is a projected edge. Valid is false until the edge has been projected
// at least once; invalid edges are never drawn or erased.
type Edge2D struct {
	P0, P1 Point2D
	Valid  bool
}

// ProjectPoint rotates v and applies the perspective divide. ok is false when the
// rotated point is not safely in front of the camera.
//
// The rotated coordinates are truncated toward zero before the divide, so the
// projection only moves when a rotated endpoint crosses a whole model unit.
func ProjectPoint(v Vertex3D, m RotationMatrix, cam Camera) (p Point2D, ok bool) {
	r := m.Mul3x1(v.vec())
	xv, yv, zv := math.Trunc(r.X()), math.Trunc(r.Y()), math.Trunc(r.Z())
	zvt := zv - float64(cam.Zoff)
	// Also rejects NaN depth.
	if !(zvt < NearLimit) {
		return Point2D{}, false
	}
	x := FocalLength*(xv/zvt) + float64(cam.Xoff)
	y := FocalLength*(yv/zvt) + float64(cam.Yoff)
	if !finite(x) || !finite(y) {
		return Point2D{}, false
	}
	return Point2D{X: int(x), Y: int(y)}, true
}

// Project writes the projection of every edge into dst, which must be the same
// length as edges.
//
// dst is expected to hold the previous frame's projection. An edge with either
// endpoint failing the depth test keeps its previous entry unchanged. Project
// returns the number of entries it replaced.
func Project(dst []Edge2D, edges []Edge3D, m RotationMatrix, cam Camera) (int, error) {
	if len(dst) != len(edges) {
		return 0, fmt.Errorf("project %d edges into %d slots: %w", len(edges), len(dst), ErrEdgeCount)
	}
	updated := 0
	for i, e := range edges {
		p0, ok0 := ProjectPoint(e.P0, m, cam)
		p1, ok1 := ProjectPoint(e.P1, m, cam)
		if !ok0 || !ok1 {
			continue
		}
		dst[i] = Edge2D{P0: p0, P1: p1, Valid: true}
		updated++
	}
	return updated, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
