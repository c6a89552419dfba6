package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/mesh"
)

// EdgeInfo describes an edge shared by one or more facets
type EdgeInfo struct {
	Start   geometry.Vector3 `json:"start"`
	End     geometry.Vector3 `json:"end"`
	Length  float64          `json:"length"`
	FacetID int              `json:"facet_id"`
}

// Stats contains shape model statistics of a built mesh
type Stats struct {
	VertexCount int                  `json:"vertex_count"`
	FacetCount  int                  `json:"facet_count"`
	BoundingBox geometry.BoundingBox `json:"bounding_box"`
	Dimensions  geometry.Vector3     `json:"dimensions"`
	Center      geometry.Vector3     `json:"center"`
	SurfaceArea float64              `json:"surface_area"`
	Volume      float64              `json:"volume"`

	EdgeCount     int     `json:"edge_count"`
	MinEdgeLength float64 `json:"min_edge_length"`
	MaxEdgeLength float64 `json:"max_edge_length"`
	AvgEdgeLength float64 `json:"avg_edge_length"`

	OctreeLevel   int     `json:"octree_level"`
	BucketCount   int     `json:"bucket_count"`
	MaxBucketSize int     `json:"max_bucket_size"`
	AvgBucketSize float64 `json:"avg_bucket_size"`

	Edges []EdgeInfo `json:"-"`
}

// Analyze computes statistics for the mesh. Edges shared by several facets
// are counted once.
func Analyze(m *mesh.Mesh) *Stats {
	bbox := m.BoundingBox()
	stats := &Stats{
		VertexCount: m.VertexCount(),
		FacetCount:  m.FacetCount(),
		BoundingBox: bbox,
		Dimensions:  bbox.Size(),
		Center:      m.Center(),
		SurfaceArea: m.SurfaceArea(),
		Volume:      EnclosedVolume(m),
		OctreeLevel: m.OctreeLevel(),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	seen := make(map[[2]int]bool)

	for i := 0; i < m.FacetCount(); i++ {
		face := m.Face(i)
		for j := 0; j < 3; j++ {
			a, b := face[j], face[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true

			edge := EdgeInfo{
				Start:   m.Vertex(a),
				End:     m.Vertex(b),
				FacetID: i,
			}
			edge.Length = edge.Start.Distance(edge.End)
			stats.Edges = append(stats.Edges, edge)

			totalLength += edge.Length
			minLength = math.Min(minLength, edge.Length)
			maxLength = math.Max(maxLength, edge.Length)
		}
	}

	stats.EdgeCount = len(stats.Edges)
	if stats.EdgeCount > 0 {
		stats.MinEdgeLength = minLength
		stats.MaxEdgeLength = maxLength
		stats.AvgEdgeLength = totalLength / float64(stats.EdgeCount)
	}

	buckets := m.Buckets()
	stats.BucketCount = len(buckets)
	total := 0
	for _, size := range buckets {
		total += size
		if size > stats.MaxBucketSize {
			stats.MaxBucketSize = size
		}
	}
	if stats.BucketCount > 0 {
		stats.AvgBucketSize = float64(total) / float64(stats.BucketCount)
	}

	return stats
}

// EnclosedVolume returns the volume enclosed by the mesh as the sum of
// signed tetrahedra spanned by each facet and the origin. The result is only
// meaningful for closed meshes with consistent outward winding.
func EnclosedVolume(m *mesh.Mesh) float64 {
	volume := 0.0
	for i := 0; i < m.FacetCount(); i++ {
		f := m.Facet(i)
		volume += f.V1.Dot(f.V2.Cross(f.V3)) / 6.0
	}
	return volume
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(stats *Stats, count int) []EdgeInfo {
	return sortedEdges(stats, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(stats *Stats, count int) []EdgeInfo {
	return sortedEdges(stats, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(stats *Stats, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(stats.Edges))
	copy(edges, stats.Edges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FindNearestVertex finds the mesh vertex nearest to a given point
func FindNearestVertex(m *mesh.Mesh, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for i := 0; i < m.VertexCount(); i++ {
		vertex := m.Vertex(i)
		if distance := point.Distance(vertex); distance < minDistance {
			minDistance = distance
			nearest = vertex
		}
	}

	return nearest, minDistance
}

// ShadowFraction returns the number of facets shadowed from a point light
// and their share of the total surface area.
func ShadowFraction(m *mesh.Mesh, light geometry.Vector3) (shadowed int, areaFraction float64) {
	shadowedArea := 0.0
	for i := 0; i < m.FacetCount(); i++ {
		f := m.Facet(i)
		if m.IsInShadow(f, light) > 0 {
			shadowed++
			shadowedArea += f.Area()
		}
	}
	if total := m.SurfaceArea(); total > 0 {
		areaFraction = shadowedArea / total
	}
	return shadowed, areaFraction
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
