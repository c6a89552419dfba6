// Package octree implements a hierarchical octree over a single bounding box
// using integer index arithmetic instead of linked nodes.
//
// Level 0 is the whole box and has index 0. Level n divides every level n-1
// cell into 8 equal octants. The cells of a level occupy a contiguous index
// range, so an index alone determines both the level and the position of its
// cell. The index ranges for the supported levels, with the edge length of a
// cell relative to the root box:
//
//	level  min index   max index    edge
//	0      0           0            1
//	1      1           8            1/2
//	2      9           72           1/4
//	3      73          584          1/8
//	4      585         4680         1/16
//	5      4681        37448        1/32
//	6      37449       299592       1/64
//	7      299593      2396744      1/128
//	8      2396745     19173960     1/256
//	9      19173961    153391688    1/512
//	10     153391689   1227133512   1/1024
//
// An Octree holds no mutable state and can be shared between goroutines.
package octree

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goshape/pkg/geometry"
)

// MaxLevel is the deepest supported level. Every index up to MaxIndex(MaxLevel)
// fits in a signed 32 bit integer.
const MaxLevel = 10

// childTableLevels is the number of shallow levels whose child sets are
// computed once at package initialisation.
const childTableLevels = 4

var (
	minIndex   [MaxLevel + 1]int
	maxIndex   [MaxLevel + 1]int
	childTable [][8]int
)

func init() {
	for level := 1; level <= MaxLevel; level++ {
		minIndex[level] = minIndex[level-1] + 1<<(3*(level-1))
	}
	for level := 0; level <= MaxLevel; level++ {
		maxIndex[level] = minIndex[level] + 1<<(3*level) - 1
	}

	childTable = make([][8]int, minIndex[childTableLevels])
	for index := range childTable {
		childTable[index] = computeChildren(index)
	}
}

// MinIndex returns the first index of a level
func MinIndex(level int) int {
	checkLevel(level)
	return minIndex[level]
}

// MaxIndex returns the last index of a level
func MaxIndex(level int) int {
	checkLevel(level)
	return maxIndex[level]
}

// Level returns the level of the cell with the given index
func Level(index int) int {
	if index < 0 || index > maxIndex[MaxLevel] {
		panic(fmt.Sprintf("octree: index %d outside supported range [0, %d]", index, maxIndex[MaxLevel]))
	}
	return sort.SearchInts(maxIndex[:], index)
}

// Decode returns the level and grid coordinates of a cell. Grid coordinates
// run from 0 to 2^level-1 along each axis.
func Decode(index int) (level, ix, iy, iz int) {
	level = Level(index)
	side := 1 << level
	offset := index - minIndex[level]

	iz = offset / (side * side)
	iy = (offset / side) % side
	ix = offset % side
	return level, ix, iy, iz
}

// Encode returns the index of the cell at the given level and grid coordinates
func Encode(level, ix, iy, iz int) int {
	checkLevel(level)
	side := 1 << level
	if ix < 0 || iy < 0 || iz < 0 || ix >= side || iy >= side || iz >= side {
		panic(fmt.Sprintf("octree: grid coordinate (%d, %d, %d) outside level %d", ix, iy, iz, level))
	}
	return ix + side*(iy+side*iz) + minIndex[level]
}

// Children returns the eight cells one level down that tile the given cell
func Children(index int) [8]int {
	if index >= 0 && index < len(childTable) {
		return childTable[index]
	}
	return computeChildren(index)
}

func computeChildren(index int) [8]int {
	level, ix, iy, iz := Decode(index)
	if level >= MaxLevel {
		panic(fmt.Sprintf("octree: cell %d is at the deepest level %d", index, MaxLevel))
	}

	var children [8]int
	n := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				children[n] = Encode(level+1, 2*ix+i, 2*iy+j, 2*iz+k)
				n++
			}
		}
	}
	return children
}

func checkLevel(level int) {
	if level < 0 || level > MaxLevel {
		panic(fmt.Sprintf("octree: level %d outside supported range [0, %d]", level, MaxLevel))
	}
}

// Octree maps points and cells inside a root bounding box to indices
type Octree struct {
	bounds geometry.BoundingBox
	scale  geometry.Vector3
}

// New creates an octree whose level 0 cell is bounds
func New(bounds geometry.BoundingBox) *Octree {
	return &Octree{
		bounds: bounds,
		scale:  bounds.Size(),
	}
}

// Bounds returns the root bounding box
func (o *Octree) Bounds() geometry.BoundingBox {
	return o.bounds
}

// CellBounds returns the extent of the cell with the given index
func (o *Octree) CellBounds(index int) geometry.BoundingBox {
	level, ix, iy, iz := Decode(index)
	side := float64(int(1) << level)

	minPt := geometry.Vector3{
		X: o.scale.X*float64(ix)/side + o.bounds.Min.X,
		Y: o.scale.Y*float64(iy)/side + o.bounds.Min.Y,
		Z: o.scale.Z*float64(iz)/side + o.bounds.Min.Z,
	}
	maxPt := geometry.Vector3{
		X: o.scale.X*float64(ix+1)/side + o.bounds.Min.X,
		Y: o.scale.Y*float64(iy+1)/side + o.bounds.Min.Y,
		Z: o.scale.Z*float64(iz+1)/side + o.bounds.Min.Z,
	}
	return geometry.NewBoundingBoxFromCorners(minPt, maxPt)
}

// PointIndex returns the index of the cell at level that contains point.
// Points on the maximum faces of the root box belong to the last cell along
// that axis, and points outside the box are clamped to the nearest cell.
func (o *Octree) PointIndex(point geometry.Vector3, level int) int {
	checkLevel(level)
	side := 1 << level

	ix := gridCoord(point.X, o.bounds.Min.X, o.scale.X, side)
	iy := gridCoord(point.Y, o.bounds.Min.Y, o.scale.Y, side)
	iz := gridCoord(point.Z, o.bounds.Min.Z, o.scale.Z, side)

	return ix + side*(iy+side*iz) + minIndex[level]
}

func gridCoord(value, origin, scale float64, side int) int {
	if scale <= 0 {
		return 0
	}
	i := int(math.Floor((value - origin) / scale * float64(side)))
	if i < 0 {
		return 0
	}
	if i >= side {
		return side - 1
	}
	return i
}
