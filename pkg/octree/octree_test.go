package octree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOctree() *Octree {
	return New(geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(-3, 1, -0.5),
		geometry.NewVector3(5, 2, 7.5),
	))
}

func TestIndexRanges(t *testing.T) {
	tests := []struct {
		level    int
		min, max int
	}{
		{0, 0, 0},
		{1, 1, 8},
		{2, 9, 72},
		{3, 73, 584},
		{4, 585, 4680},
		{9, 19173961, 153391688},
		{10, 153391689, 1227133512},
	}
	for _, tt := range tests {
		require.Equal(t, tt.min, MinIndex(tt.level), "min index of level %d", tt.level)
		require.Equal(t, tt.max, MaxIndex(tt.level), "max index of level %d", tt.level)
	}
	require.LessOrEqual(t, MaxIndex(MaxLevel), math.MaxInt32)
}

func TestLevel(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		require.Equal(t, level, Level(MinIndex(level)))
		require.Equal(t, level, Level(MaxIndex(level)))
	}
	require.Panics(t, func() { Level(MaxIndex(MaxLevel) + 1) })
	require.Panics(t, func() { Level(-1) })
}

func TestEncodeDecode(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for level := 0; level <= MaxLevel; level++ {
		side := 1 << level
		for n := 0; n < 50; n++ {
			ix, iy, iz := r.Intn(side), r.Intn(side), r.Intn(side)
			index := Encode(level, ix, iy, iz)

			gotLevel, gx, gy, gz := Decode(index)
			require.Equal(t, level, gotLevel)
			require.Equal(t, [3]int{ix, iy, iz}, [3]int{gx, gy, gz})
		}
	}
	require.Panics(t, func() { Encode(2, 4, 0, 0) })
	require.Panics(t, func() { Encode(MaxLevel+1, 0, 0, 0) })
}

func TestPointIndexRoundTrip(t *testing.T) {
	o := testOctree()

	t.Run("every cell of shallow levels", func(t *testing.T) {
		for index := 0; index <= MaxIndex(4); index++ {
			level := Level(index)
			center := o.CellBounds(index).Center()
			require.Equal(t, index, o.PointIndex(center, level))
		}
	})

	t.Run("sampled cells of deep levels", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for level := 5; level <= MaxLevel; level++ {
			span := MaxIndex(level) - MinIndex(level) + 1
			samples := []int{MinIndex(level), MaxIndex(level)}
			for n := 0; n < 200; n++ {
				samples = append(samples, MinIndex(level)+r.Intn(span))
			}
			for _, index := range samples {
				center := o.CellBounds(index).Center()
				require.Equal(t, level, Level(index))
				require.Equal(t, index, o.PointIndex(center, level))
			}
		}
	})
}

func TestPointIndexBoundary(t *testing.T) {
	o := testOctree()
	bounds := o.Bounds()

	// the maximum corner belongs to the last cell
	require.Equal(t, MaxIndex(3), o.PointIndex(bounds.Max, 3))
	require.Equal(t, MinIndex(3), o.PointIndex(bounds.Min, 3))

	// outside points are clamped
	require.Equal(t, MaxIndex(2), o.PointIndex(bounds.Max.Add(geometry.NewVector3(10, 10, 10)), 2))
	require.Equal(t, 0, o.PointIndex(bounds.Min, 0))

	require.Panics(t, func() { o.PointIndex(bounds.Min, MaxLevel+1) })
}

func TestPointIndexFlatBox(t *testing.T) {
	o := New(geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 0),
	))

	index := o.PointIndex(geometry.NewVector3(0.9, 0.1, 0), 1)
	_, ix, iy, iz := Decode(index)
	assert.Equal(t, [3]int{1, 0, 0}, [3]int{ix, iy, iz})
}

func TestChildrenTileParent(t *testing.T) {
	o := testOctree()

	parents := []int{0, 5, MinIndex(3), MaxIndex(3), MinIndex(4) + 17, MaxIndex(6), MinIndex(9) + 12345}
	for _, parent := range parents {
		parentBox := o.CellBounds(parent)
		children := Children(parent)

		volume := 0.0
		for i, child := range children {
			require.Equal(t, Level(parent)+1, Level(child))

			childBox := o.CellBounds(child)
			overlap, ok := parentBox.Intersection(childBox)
			require.True(t, ok)
			require.InDelta(t, childBox.Volume(), overlap.Volume(), 1e-9*parentBox.Volume())
			volume += childBox.Volume()

			for _, other := range children[i+1:] {
				require.NotEqual(t, child, other)
				if both, ok := childBox.Intersection(o.CellBounds(other)); ok {
					require.InDelta(t, 0, both.Volume(), 1e-12*parentBox.Volume())
				}
			}
		}
		require.InDelta(t, parentBox.Volume(), volume, 1e-9*parentBox.Volume())
	}
}

func TestChildrenTableMatchesArithmetic(t *testing.T) {
	for index := 0; index < MinIndex(childTableLevels); index++ {
		require.Equal(t, computeChildren(index), Children(index))
	}
}

func TestChildrenOfDeepestLevel(t *testing.T) {
	require.Panics(t, func() { Children(MinIndex(MaxLevel)) })
}
