package mesh

import (
	"github.com/philipparndt/goshape/pkg/geometry"
)

// Rotate returns a new mesh rotated by rotation about the mesh center
func (m *Mesh) Rotate(rotation geometry.Matrix3) (*Mesh, error) {
	return m.mapVertices(func(v geometry.Vector3) geometry.Vector3 {
		return rotation.MulVec(v.Sub(m.center)).Add(m.center)
	})
}

// Scale returns a new mesh scaled by factor about the mesh center
func (m *Mesh) Scale(factor float64) (*Mesh, error) {
	return m.mapVertices(func(v geometry.Vector3) geometry.Vector3 {
		return v.Sub(m.center).Mul(factor).Add(m.center)
	})
}

// Translate returns a new mesh moved by offset
func (m *Mesh) Translate(offset geometry.Vector3) (*Mesh, error) {
	return m.mapVertices(func(v geometry.Vector3) geometry.Vector3 {
		return v.Add(offset)
	})
}

// mapVertices rebuilds the mesh with every vertex replaced by fn(vertex)
// and the same connectivity.
func (m *Mesh) mapVertices(fn func(geometry.Vector3) geometry.Vector3) (*Mesh, error) {
	b := NewBuilder()
	for _, v := range m.vertices {
		b.AddVertex(fn(v))
	}
	for _, face := range m.faces {
		if err := b.AddFacet(face[0], face[1], face[2]); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Subset returns a new mesh made of the given facets. Vertices are numbered
// in the order the facets first use them.
func (m *Mesh) Subset(facets []*geometry.Facet) (*Mesh, error) {
	b := NewBuilder()
	local := make(map[geometry.Vector3]int)

	indexOf := func(v geometry.Vector3) int {
		if index, ok := local[v]; ok {
			return index
		}
		index := b.AddVertex(v)
		local[v] = index
		return index
	}

	for _, f := range facets {
		i1, i2, i3 := indexOf(f.V1), indexOf(f.V2), indexOf(f.V3)
		if err := b.AddFacet(i1, i2, i3); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
