package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
	if bbox.MaxSide() != 30 {
		t.Errorf("MaxSide failed: expected 30, got %v", bbox.MaxSide())
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	volume := bbox.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	bbox := NewBoundingBoxFromCorners(NewVector3(-1, -1, -1), NewVector3(1, 1, 1))

	tests := []struct {
		name  string
		point Vector3
		want  bool
	}{
		{"center", NewVector3(0, 0, 0), true},
		{"corner is closed", NewVector3(1, 1, 1), true},
		{"face is closed", NewVector3(-1, 0.5, 0), true},
		{"outside x", NewVector3(1.0001, 0, 0), false},
		{"outside z", NewVector3(0, 0, -2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bbox.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBoundingBoxIntersectsRay(t *testing.T) {
	bbox := NewBoundingBoxFromCorners(NewVector3(-1, -1, -1), NewVector3(1, 1, 1))

	tests := []struct {
		name      string
		origin    Vector3
		direction Vector3
		want      bool
	}{
		{"toward box", NewVector3(0, 0, -5), NewVector3(0, 0, 1), true},
		{"away from box", NewVector3(0, 0, -5), NewVector3(0, 0, -1), false},
		{"origin inside", NewVector3(0.2, 0.1, 0), NewVector3(1, 2, 3), true},
		{"oblique hit", NewVector3(-5, -5, -5), NewVector3(1, 1, 1.01), true},
		{"oblique miss", NewVector3(-5, 5, 0), NewVector3(1, 1, 0), false},
		{"parallel inside slab", NewVector3(0.5, -5, 0.5), NewVector3(0, 1, 0), true},
		{"parallel outside slab", NewVector3(2, -5, 0.5), NewVector3(0, 1, 0), false},
		{"grazing face", NewVector3(1, -5, 0), NewVector3(0, 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bbox.IntersectsRay(tt.origin, tt.direction); got != tt.want {
				t.Errorf("IntersectsRay(%v, %v) = %v, want %v", tt.origin, tt.direction, got, tt.want)
			}
		})
	}
}

func TestBoundingBoxIntersection(t *testing.T) {
	a := NewBoundingBoxFromCorners(NewVector3(0, 0, 0), NewVector3(2, 2, 2))
	b := NewBoundingBoxFromCorners(NewVector3(1, 1, 1), NewVector3(3, 3, 3))

	overlap, ok := a.Intersection(b)
	if !ok {
		t.Fatalf("Intersection failed: expected overlap")
	}
	if math.Abs(overlap.Volume()-1) > 1e-10 {
		t.Errorf("Intersection failed: expected volume 1, got %v", overlap.Volume())
	}

	c := NewBoundingBoxFromCorners(NewVector3(2, 0, 0), NewVector3(4, 2, 2))
	touch, ok := a.Intersection(c)
	if !ok || touch.Volume() != 0 {
		t.Errorf("Intersection failed: touching boxes should overlap with zero volume, got %v %v", ok, touch.Volume())
	}

	d := NewBoundingBoxFromCorners(NewVector3(5, 5, 5), NewVector3(6, 6, 6))
	if _, ok := a.Intersection(d); ok {
		t.Errorf("Intersection failed: disjoint boxes should not overlap")
	}
}
