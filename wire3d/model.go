package wire3d

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrEmptyModel   = errors.New("wire3d: model has no edges")
	ErrUnknownModel = errors.New("wire3d: unknown model")
)

// Vertex3D is a model-space point centered on the origin.
type Vertex3D struct {
	X, Y, Z int
}

func V(x, y, z int) Vertex3D { return Vertex3D{X: x, Y: y, Z: z} }

func (v Vertex3D) vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Edge3D is one segment of the wireframe.
type Edge3D struct {
	P0, P1 Vertex3D
}

func E(p0, p1 Vertex3D) Edge3D { return Edge3D{P0: p0, P1: p1} }

// Model is an ordered, immutable list of edges.
//
// Edge order is significant: projected generations are indexed by it, and the
// renderer colors edges by position.
type Model struct {
	name  string
	edges []Edge3D
}

// NewModel copies edges into a new model.
func NewModel(name string, edges []Edge3D) (*Model, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyModel)
	}
	cp := make([]Edge3D, len(edges))
	copy(cp, edges)
	return &Model{name: name, edges: cp}, nil
}

func mustModel(name string, edges []Edge3D) *Model {
	m, err := NewModel(name, edges)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Model) Name() string { return m.name }
func (m *Model) Len() int     { return len(m.edges) }

// Cube builds the reference cube: front face, back face, then the four
// connecting edges. Coordinates are ±half on every axis.
func Cube(half int) *Model {
	h := half
	return mustModel("cube", []Edge3D{
		// Front face.
		E(V(-h, -h, h), V(h, -h, h)),
		E(V(h, -h, h), V(h, h, h)),
		E(V(h, h, h), V(-h, h, h)),
		E(V(-h, h, h), V(-h, -h, h)),

		// Back face.
		E(V(-h, -h, -h), V(h, -h, -h)),
		E(V(h, -h, -h), V(h, h, -h)),
		E(V(h, h, -h), V(-h, h, -h)),
		E(V(-h, h, -h), V(-h, -h, -h)),

		// Connecting edges.
		E(V(-h, -h, h), V(-h, -h, -h)),
		E(V(h, -h, h), V(h, -h, -h)),
		E(V(-h, h, h), V(-h, h, -h)),
		E(V(h, h, h), V(h, h, -h)),
	})
}

// Tetrahedron builds a regular tetrahedron inscribed in the ±r cube.
// Edge groups: two base edges, two more base/side edges, two apex edges.
func Tetrahedron(r int) *Model {
	a := V(r, r, r)
	b := V(-r, -r, r)
	c := V(-r, r, -r)
	d := V(r, -r, -r)
	return mustModel("tetrahedron", []Edge3D{
		E(a, b), E(b, c),
		E(c, a), E(a, d),
		E(b, d), E(c, d),
	})
}

// Octahedron builds an octahedron with its six vertices on the axes at ±r.
// Edge groups: upper pyramid, lower pyramid, equator.
func Octahedron(r int) *Model {
	top := V(0, -r, 0)
	bottom := V(0, r, 0)
	ring := [4]Vertex3D{V(r, 0, 0), V(0, 0, r), V(-r, 0, 0), V(0, 0, -r)}

	edges := make([]Edge3D, 0, 12)
	for _, v := range ring {
		edges = append(edges, E(top, v))
	}
	for _, v := range ring {
		edges = append(edges, E(bottom, v))
	}
	for i := range ring {
		edges = append(edges, E(ring[i], ring[(i+1)%len(ring)]))
	}
	return mustModel("octahedron", edges)
}

var builtinModels = map[string]func() *Model{
	"cube":        func() *Model { return Cube(50) },
	"tetrahedron": func() *Model { return Tetrahedron(50) },
	"octahedron":  func() *Model { return Octahedron(70) },
}

// ModelByName returns a built-in model at its reference size.
func ModelByName(name string) (*Model, error) {
	fn, ok := builtinModels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return fn(), nil
}

// ModelNames lists the built-in model names in a stable order.
func ModelNames() []string {
	names := make([]string, 0, len(builtinModels))
	for name := range builtinModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
