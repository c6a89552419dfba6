package geometry

import "math"

// facetEpsilon is the determinant threshold below which a ray is treated as
// parallel to the facet plane.
const facetEpsilon = 1e-12

// Facet represents a triangular facet in 3D space. Vertices are in
// counterclockwise order:
//
//	   1
//	  / \
//	 2---3
//
// The normal points along (v3-v2)x(v1-v2). Derived attributes are computed
// once when the facet is created and the facet never changes afterwards.
type Facet struct {
	V1, V2, V3 Vector3

	center         Vector3
	normal         Vector3
	area           float64
	meanEdgeLength float64
}

// NewFacet creates a new facet
func NewFacet(v1, v2, v3 Vector3) *Facet {
	f := &Facet{V1: v1, V2: v2, V3: v3}

	f.center = Vector3{
		X: (v1.X + v2.X + v3.X) / 3.0,
		Y: (v1.Y + v2.Y + v3.Y) / 3.0,
		Z: (v1.Z + v2.Z + v3.Z) / 3.0,
	}
	f.normal = v3.Sub(v2).Cross(v1.Sub(v2)).Normalize()

	// Heron's formula on squared edge lengths
	a := v2.Sub(v1).Dot(v2.Sub(v1))
	b := v3.Sub(v2).Dot(v3.Sub(v2))
	c := v1.Sub(v3).Dot(v1.Sub(v3))
	f.area = 0.25 * math.Sqrt(math.Max(0, 4.0*a*c-(a-b+c)*(a-b+c)))
	f.meanEdgeLength = (math.Sqrt(a) + math.Sqrt(b) + math.Sqrt(c)) / 3.0

	return f
}

// Vertices returns the three vertices in winding order
func (f *Facet) Vertices() [3]Vector3 {
	return [3]Vector3{f.V1, f.V2, f.V3}
}

// Center returns the centroid of the facet
func (f *Facet) Center() Vector3 {
	return f.center
}

// Normal returns the unit normal of the facet
func (f *Facet) Normal() Vector3 {
	return f.normal
}

// Area returns the surface area of the facet
func (f *Facet) Area() float64 {
	return f.area
}

// MeanEdgeLength returns the mean length of the three edges
func (f *Facet) MeanEdgeLength() float64 {
	return f.meanEdgeLength
}

// EdgeLengths returns the lengths of all three edges
func (f *Facet) EdgeLengths() [3]float64 {
	return [3]float64{
		f.V1.Distance(f.V2),
		f.V2.Distance(f.V3),
		f.V3.Distance(f.V1),
	}
}

// Perimeter returns the total length of all edges
func (f *Facet) Perimeter() float64 {
	lengths := f.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Intersect tests the ray against the facet (Möller–Trumbore). On a hit it
// returns the ray parameter t of the intersection point origin + t*direction.
// t is not restricted to be positive: the whole line through origin is
// tested, callers filter on direction.
func (f *Facet) Intersect(origin, direction Vector3) (t float64, hit bool) {
	edge1 := f.V2.Sub(f.V1)
	edge2 := f.V3.Sub(f.V1)
	pvec := direction.Cross(edge2)
	det := edge1.Dot(pvec)

	if det > -facetEpsilon && det < facetEpsilon {
		return 0, false
	}

	invDet := 1.0 / det
	tvec := origin.Sub(f.V1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	return edge2.Dot(qvec) * invDet, true
}

// Intersects reports whether the line through origin along direction passes
// through the facet
func (f *Facet) Intersects(origin, direction Vector3) bool {
	_, hit := f.Intersect(origin, direction)
	return hit
}

// Key returns the value identity of the facet
func (f *Facet) Key() FacetKey {
	return FacetKey{f.V1, f.V2, f.V3}
}

// FacetKey is a comparable value identifying a facet by its three vertices in
// winding order. Two facets with bit-for-bit equal vertices share a key.
type FacetKey [3]Vector3
