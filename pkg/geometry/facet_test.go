package geometry

import (
	"math"
	"testing"
)

func TestFacetArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestFacetAreaDegenerate(t *testing.T) {
	// Collinear vertices must not produce NaN
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(3, 3, 3),
	)

	if math.IsNaN(tri.Area()) || tri.Area() > 1e-6 {
		t.Errorf("Area failed: expected ~0 for collinear vertices, got %v", tri.Area())
	}
}

func TestFacetEdgeLengths(t *testing.T) {
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
	if math.Abs(tri.MeanEdgeLength()-4.0) > 1e-10 {
		t.Errorf("MeanEdgeLength failed: expected 4.0, got %v", tri.MeanEdgeLength())
	}
}

func TestFacetPerimeter(t *testing.T) {
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestFacetCenter(t *testing.T) {
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestFacetNormal(t *testing.T) {
	// counterclockwise seen from +z
	tri := NewFacet(
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
	)

	expected := NewVector3(0, 0, 1)
	if tri.Normal().Distance(expected) > 1e-12 {
		t.Errorf("Normal failed: expected %v, got %v", expected, tri.Normal())
	}
}

func TestFacetIntersects(t *testing.T) {
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	tests := []struct {
		name      string
		origin    Vector3
		direction Vector3
		want      bool
	}{
		{"through interior", NewVector3(0.25, 0.25, -1), NewVector3(0, 0, 1), true},
		{"outside triangle", NewVector3(10, 10, -1), NewVector3(0, 0, 1), false},
		{"parallel to plane", NewVector3(0.25, 0.25, -1), NewVector3(1, 0, 0), false},
		{"beyond hypotenuse", NewVector3(0.6, 0.6, -1), NewVector3(0, 0, 1), false},
		{"on vertex", NewVector3(0, 0, -1), NewVector3(0, 0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Intersects(tt.origin, tt.direction); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.origin, tt.direction, got, tt.want)
			}
		})
	}
}

func TestFacetIntersectDistance(t *testing.T) {
	tri := NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	dist, hit := tri.Intersect(NewVector3(0.25, 0.25, -2), NewVector3(0, 0, 1))
	if !hit || math.Abs(dist-2) > 1e-12 {
		t.Errorf("Intersect failed: expected hit at 2, got %v %v", hit, dist)
	}

	// the line is tested in both directions
	dist, hit = tri.Intersect(NewVector3(0.25, 0.25, 3), NewVector3(0, 0, 1))
	if !hit || math.Abs(dist+3) > 1e-12 {
		t.Errorf("Intersect failed: expected hit at -3, got %v %v", hit, dist)
	}
}

func TestFacetKey(t *testing.T) {
	a := NewFacet(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	b := NewFacet(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	c := NewFacet(NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 0))

	if a.Key() != b.Key() {
		t.Errorf("Key failed: equal facets should share a key")
	}
	if a.Key() == c.Key() {
		t.Errorf("Key failed: rotated winding should give a different key")
	}
}
