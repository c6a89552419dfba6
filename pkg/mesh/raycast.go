package mesh

import (
	"sort"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/octree"
)

// Hit is a facet crossed by a ray. T is the ray parameter of the crossing,
// so the surface point is origin + T*direction.
type Hit struct {
	Facet *geometry.Facet
	T     float64
}

// Point returns the surface point of the hit for the ray it came from
func (h Hit) Point(origin, direction geometry.Vector3) geometry.Vector3 {
	return origin.Add(direction.Mul(h.T))
}

// candidateCells returns the occupied bucket cells the ray may pass through.
// Cells are tested against the ray on every level above the bucket level.
func (m *Mesh) candidateCells(origin, direction geometry.Vector3) []int {
	if !m.bounds.IntersectsRay(origin, direction) {
		return nil
	}

	cells := []int{0}
	for level := 0; level < m.level; level++ {
		next := make([]int, 0, 8*len(cells))
		for _, index := range cells {
			if level > 0 && !m.octree.CellBounds(index).IntersectsRay(origin, direction) {
				continue
			}
			children := octree.Children(index)
			next = append(next, children[:]...)
		}
		cells = next
	}

	occupied := cells[:0]
	for _, index := range cells {
		if _, ok := m.buckets[index]; ok {
			occupied = append(occupied, index)
		}
	}
	return occupied
}

// forEachHit calls fn for every facet crossed by the ray, once per facet,
// until fn returns false. When origin lies inside the bounding box only
// facets whose centers are ahead of origin count, so a ray leaving the
// surface does not report the facet it starts on.
func (m *Mesh) forEachHit(origin, direction geometry.Vector3, fn func(Hit) bool) {
	outside := !m.bounds.Contains(origin)
	seen := make(map[*geometry.Facet]bool)

	for _, index := range m.candidateCells(origin, direction) {
		for _, f := range m.buckets[index] {
			if seen[f] {
				continue
			}
			seen[f] = true

			t, hit := f.Intersect(origin, direction)
			if !hit {
				continue
			}
			if !outside && f.Center().Sub(origin).Dot(direction) <= 0 {
				continue
			}
			if !fn(Hit{Facet: f, T: t}) {
				return
			}
		}
	}
}

// RayCast returns the facets crossed by the ray from origin along direction,
// nearest first. Hits are ordered by the ray parameter of the crossing; equal
// parameters keep insertion order.
func (m *Mesh) RayCast(origin, direction geometry.Vector3) []Hit {
	var hits []Hit
	m.forEachHit(origin, direction, func(h Hit) bool {
		hits = append(hits, h)
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].T != hits[j].T {
			return hits[i].T < hits[j].T
		}
		return m.order(hits[i].Facet) < m.order(hits[j].Facet)
	})
	return hits
}

// Intersections returns the facets crossed by the ray, nearest first. The
// result is empty when the ray misses the mesh.
func (m *Mesh) Intersections(origin, direction geometry.Vector3) []*geometry.Facet {
	hits := m.RayCast(origin, direction)
	facets := make([]*geometry.Facet, len(hits))
	for i, h := range hits {
		facets[i] = h.Facet
	}
	return facets
}

// Intersects reports whether the ray crosses any facet. It stops at the
// first crossing found.
func (m *Mesh) Intersects(origin, direction geometry.Vector3) bool {
	found := false
	m.forEachHit(origin, direction, func(Hit) bool {
		found = true
		return false
	})
	return found
}

// Intercept returns the first surface point along the ray
func (m *Mesh) Intercept(origin, direction geometry.Vector3) (geometry.Vector3, bool) {
	hits := m.RayCast(origin, direction)
	if len(hits) == 0 {
		return geometry.Vector3{}, false
	}
	return hits[0].Point(origin, direction), true
}

// OutwardNormal returns the normal of the first facet crossed by the ray
// from the mesh center toward surfacePoint.
func (m *Mesh) OutwardNormal(surfacePoint geometry.Vector3) (geometry.Vector3, bool) {
	facets := m.Intersections(m.center, surfacePoint.Sub(m.center))
	if len(facets) == 0 {
		return geometry.Vector3{}, false
	}
	return facets[0].Normal(), true
}

// IsInShadow casts a ray from a point light to the center of f and returns 0
// when f is the first facet the ray meets and 1 otherwise. A facet turned
// away from the light (normal along the ray) is shadowed by the body itself.
func (m *Mesh) IsInShadow(f *geometry.Facet, light geometry.Vector3) float64 {
	direction := f.Center().Sub(light)
	if f.Normal().Dot(direction) >= 0 {
		return 1
	}

	hits := m.RayCast(light, direction)
	if len(hits) > 0 && hits[0].Facet.Key() == f.Key() {
		return 0
	}
	return 1
}
