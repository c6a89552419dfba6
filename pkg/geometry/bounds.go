package geometry

import (
	"fmt"
	"math"
)

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that can be grown with Extend
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// NewBoundingBoxFromCorners creates a bounding box from its minimum and maximum corners
func NewBoundingBoxFromCorners(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// MaxSide returns the length of the longest side
func (b BoundingBox) MaxSide() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	return size.Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether the point lies inside the box. All three axis
// intervals are closed.
func (b BoundingBox) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Intersection returns the overlap of two boxes. ok is false when the boxes
// are disjoint; touching boxes overlap with zero volume.
func (b BoundingBox) Intersection(other BoundingBox) (overlap BoundingBox, ok bool) {
	overlap = BoundingBox{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
	if overlap.Min.X > overlap.Max.X || overlap.Min.Y > overlap.Max.Y || overlap.Min.Z > overlap.Max.Z {
		return BoundingBox{}, false
	}
	return overlap, true
}

// IntersectsRay reports whether the ray starting at origin and pointing along
// direction passes through the box, using the slab method. Only the forward
// half of the ray (t >= 0) is considered, so a ray pointing away from the box
// misses it.
//
// A zero direction component means the ray is parallel to that slab; it then
// hits only if the origin already lies between the two planes.
func (b BoundingBox) IntersectsRay(origin, direction Vector3) bool {
	o := origin.Coords()
	d := direction.Coords()
	lo := b.Min.Coords()
	hi := b.Max.Coords()

	tmin := 0.0
	tmax := math.MaxFloat64

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return false
			}
			continue
		}

		t0 := (lo[axis] - o[axis]) / d[axis]
		t1 := (hi[axis] - o[axis]) / d[axis]

		tmin = math.Max(tmin, math.Min(t0, t1))
		tmax = math.Min(tmax, math.Max(t0, t1))

		if tmax < tmin {
			return false
		}
	}

	return true
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%s - %s", b.Min, b.Max)
}
