// Package sdfmesh generates synthetic shape models by tessellating signed
// distance field solids from github.com/deadsy/sdfx with marching cubes.
package sdfmesh

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/mesh"
)

// ErrTypeInvalidShape marks shape parameters sdfx rejects
const ErrTypeInvalidShape = "sdfmesh-invalid-shape"

// DefaultCells is the marching cubes resolution along the longest axis
const DefaultCells = 64

// weldTolerance is the distance, relative to the longest side, below which
// marching cubes corners are merged into one vertex.
const weldTolerance = 1e-9

// Sphere tessellates a sphere of the given radius centered at the origin
func Sphere(radius float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, invalidShape("sphere", err)
	}
	return FromSDF(s, cells)
}

// Ellipsoid tessellates an ellipsoid with semi-axes a, b and c centered at
// the origin
func Ellipsoid(a, b, c float64, cells int) (*mesh.Mesh, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, errors.New("semi-axes must be positive").
			WithType(ErrTypeInvalidShape).
			WithTag("shape", "ellipsoid").
			WithTag("a", a).
			WithTag("b", b).
			WithTag("c", c)
	}

	s, err := sdf.Sphere3D(1)
	if err != nil {
		return nil, invalidShape("ellipsoid", err)
	}
	return FromSDF(sdf.Transform3D(s, sdf.Scale3d(v3.Vec{X: a, Y: b, Z: c})), cells)
}

// Box tessellates a box with the given side lengths centered at the origin.
// round is the radius of the rounded edges.
func Box(x, y, z, round float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, round)
	if err != nil {
		return nil, invalidShape("box", err)
	}
	return FromSDF(s, cells)
}

// FromSDF renders s with uniform marching cubes and builds a mesh from the
// triangles. Corners closer than the weld tolerance share one vertex and
// triangles collapsed by welding are dropped.
func FromSDF(s sdf.SDF3, cells int) (*mesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	bb := s.BoundingBox()
	size := bb.Size()
	weld := math.Max(size.X, math.Max(size.Y, size.Z)) * weldTolerance
	if weld <= 0 {
		weld = weldTolerance
	}

	welded := make(map[[3]int64]int)
	var vertices []geometry.Vector3
	var faces [][3]int

	for _, tri := range triangles {
		var face [3]int
		for j := 0; j < 3; j++ {
			p := geometry.NewVector3(tri[j].X, tri[j].Y, tri[j].Z)
			key := [3]int64{
				int64(math.Round(p.X / weld)),
				int64(math.Round(p.Y / weld)),
				int64(math.Round(p.Z / weld)),
			}
			index, ok := welded[key]
			if !ok {
				index = len(vertices)
				welded[key] = index
				vertices = append(vertices, p)
			}
			face[j] = index
		}
		if face[0] == face[1] || face[1] == face[2] || face[2] == face[0] {
			continue
		}
		faces = append(faces, face)
	}

	logs.WithTag("cells", cells).
		WithTag("triangles", len(triangles)).
		WithTag("vertices", len(vertices)).
		WithTag("facets", len(faces)).
		Debug("sdf tessellated")

	return mesh.FromIndexed(vertices, faces)
}

func invalidShape(shape string, err error) error {
	return errors.New("invalid shape parameters").
		WithType(ErrTypeInvalidShape).
		WithTag("shape", shape).
		Wrap(err)
}
