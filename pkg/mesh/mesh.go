// Package mesh implements an immutable triangular shape model with an
// octree-backed facet index used by the ray and region queries.
//
// A Mesh is assembled with a Builder and never changes after Build. All
// queries are safe for concurrent use. Transforms return new meshes.
package mesh

import (
	"sort"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/octree"
)

// Mesh is a built triangular mesh
type Mesh struct {
	// vertices and facets in the order they were added
	vertices []geometry.Vector3
	faces    [][3]int
	facets   []*geometry.Facet

	vertexIndex  map[geometry.Vector3]int
	facetIndex   map[geometry.FacetKey]int
	vertexFacets map[geometry.Vector3][]*geometry.Facet

	center         geometry.Vector3
	bounds         geometry.BoundingBox
	meanEdgeLength float64

	level   int
	octree  *octree.Octree
	buckets map[int][]*geometry.Facet
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FacetCount returns the number of facets
func (m *Mesh) FacetCount() int {
	return len(m.facets)
}

// Vertex returns the vertex at index
func (m *Mesh) Vertex(index int) geometry.Vector3 {
	return m.vertices[index]
}

// Facet returns the facet at index
func (m *Mesh) Facet(index int) *geometry.Facet {
	return m.facets[index]
}

// Face returns the 0-based vertex indices of the facet at index
func (m *Mesh) Face(index int) [3]int {
	return m.faces[index]
}

// Vertices returns a copy of the vertices in insertion order
func (m *Mesh) Vertices() []geometry.Vector3 {
	return append([]geometry.Vector3(nil), m.vertices...)
}

// Facets returns a copy of the facets in insertion order
func (m *Mesh) Facets() []*geometry.Facet {
	return append([]*geometry.Facet(nil), m.facets...)
}

// VertexIndex returns the index of the first vertex with value v.
// Add 1 to get the vertex number used in mesh files.
func (m *Mesh) VertexIndex(v geometry.Vector3) (int, bool) {
	index, ok := m.vertexIndex[v]
	return index, ok
}

// FacetIndex returns the index of the first facet with the same vertices as f
func (m *Mesh) FacetIndex(f *geometry.Facet) (int, bool) {
	index, ok := m.facetIndex[f.Key()]
	return index, ok
}

// VertexFacets returns the facets that use vertex v
func (m *Mesh) VertexFacets(v geometry.Vector3) []*geometry.Facet {
	return append([]*geometry.Facet(nil), m.vertexFacets[v]...)
}

// Center returns the mean of all vertex positions
func (m *Mesh) Center() geometry.Vector3 {
	return m.center
}

// BoundingBox returns the axis-aligned box enclosing all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return m.bounds
}

// MeanEdgeLength returns the mean facet edge length
func (m *Mesh) MeanEdgeLength() float64 {
	return m.meanEdgeLength
}

// OctreeLevel returns the octree level facets are bucketed at
func (m *Mesh) OctreeLevel() int {
	return m.level
}

// Octree returns the spatial index over the bounding box
func (m *Mesh) Octree() *octree.Octree {
	return m.octree
}

// Buckets returns the number of facets in each occupied octree cell
func (m *Mesh) Buckets() map[int]int {
	sizes := make(map[int]int, len(m.buckets))
	for index, facets := range m.buckets {
		sizes[index] = len(facets)
	}
	return sizes
}

// Bucket returns the facets with a vertex in the octree cell index
func (m *Mesh) Bucket(index int) []*geometry.Facet {
	return append([]*geometry.Facet(nil), m.buckets[index]...)
}

// SurfaceArea returns the total area of all facets
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, f := range m.facets {
		total += f.Area()
	}
	return total
}

// FacetNeighbors returns the facets sharing at least one vertex with f,
// including f itself, ordered by distance from the center of f
func (m *Mesh) FacetNeighbors(f *geometry.Facet) []*geometry.Facet {
	seen := make(map[geometry.FacetKey]bool)
	var neighbors []*geometry.Facet
	for _, v := range f.Vertices() {
		for _, n := range m.vertexFacets[v] {
			if seen[n.Key()] {
				continue
			}
			seen[n.Key()] = true
			neighbors = append(neighbors, n)
		}
	}
	m.sortFacetsByDistance(neighbors, f.Center())
	return neighbors
}

// sortFacetsByDistance orders facets by the distance of their centers from
// point, breaking ties by insertion order.
func (m *Mesh) sortFacetsByDistance(facets []*geometry.Facet, point geometry.Vector3) {
	sort.SliceStable(facets, func(i, j int) bool {
		di := facets[i].Center().Distance(point)
		dj := facets[j].Center().Distance(point)
		if di != dj {
			return di < dj
		}
		return m.order(facets[i]) < m.order(facets[j])
	})
}

func (m *Mesh) order(f *geometry.Facet) int {
	if index, ok := m.facetIndex[f.Key()]; ok {
		return index
	}
	return len(m.facets)
}
