package mesh

import (
	"sort"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// FacetsWithinRadius returns the contiguous patch of facets around seed whose
// centers are closer than radius to the center of seed. The patch grows
// through shared vertices, so facets within radius that cannot be reached
// from seed are left out. The result always contains seed and is ordered by
// distance from its center.
func (m *Mesh) FacetsWithinRadius(seed *geometry.Facet, radius float64) []*geometry.Facet {
	center := seed.Center()
	included := map[geometry.FacetKey]bool{seed.Key(): true}
	region := []*geometry.Facet{seed}

	frontier := []*geometry.Facet{seed}
	for len(frontier) > 0 {
		var next []*geometry.Facet
		for _, f := range frontier {
			for _, n := range m.FacetNeighbors(f) {
				if included[n.Key()] || n.Center().Distance(center) >= radius {
					continue
				}
				included[n.Key()] = true
				region = append(region, n)
				next = append(next, n)
			}
		}
		frontier = next
	}

	m.sortFacetsByDistance(region, center)
	return region
}

// VerticesWithinRadius returns the vertices closer than radius to point that
// belong to the contiguous patch around the facets met by the ray from the
// mesh center toward point. point does not have to lie on the surface, but
// the patch is found by looking outward from the center, so points inside the
// body give poor results. The result is ordered by distance from point.
func (m *Mesh) VerticesWithinRadius(point geometry.Vector3, radius float64) []geometry.Vector3 {
	included := make(map[geometry.FacetKey]bool)
	frontier := m.Intersections(m.center, point.Sub(m.center))
	for _, f := range frontier {
		included[f.Key()] = true
	}

	seen := make(map[geometry.Vector3]bool)
	var vertices []geometry.Vector3

	for len(frontier) > 0 {
		var next []*geometry.Facet
		for _, f := range frontier {
			for _, n := range m.FacetNeighbors(f) {
				for _, v := range n.Vertices() {
					if seen[v] || v.Distance(point) >= radius {
						continue
					}
					seen[v] = true
					vertices = append(vertices, v)
					if !included[n.Key()] {
						included[n.Key()] = true
						next = append(next, n)
					}
				}
			}
		}
		frontier = next
	}

	sort.SliceStable(vertices, func(i, j int) bool {
		return vertices[i].Distance(point) < vertices[j].Distance(point)
	})
	return vertices
}

// FacetsNearPoint returns the facets using a vertex from
// VerticesWithinRadius whose centers are closer than radius to point,
// ordered by distance from point.
func (m *Mesh) FacetsNearPoint(point geometry.Vector3, radius float64) []*geometry.Facet {
	included := make(map[geometry.FacetKey]bool)
	var facets []*geometry.Facet

	for _, v := range m.VerticesWithinRadius(point, radius) {
		for _, f := range m.vertexFacets[v] {
			if included[f.Key()] || f.Center().Distance(point) >= radius {
				continue
			}
			included[f.Key()] = true
			facets = append(facets, f)
		}
	}

	m.sortFacetsByDistance(facets, point)
	return facets
}
