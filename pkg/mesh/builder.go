package mesh

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/octree"
)

// cellsPerEdge is the target ratio between the width of a bucket cell and
// the mean facet edge length.
const cellsPerEdge = 10

// Builder accumulates vertices and facets for a Mesh. Queries are only
// available on the Mesh returned by Build.
type Builder struct {
	vertices     []geometry.Vector3
	vertexIndex  map[geometry.Vector3]int
	faces        [][3]int
	facets       []*geometry.Facet
	facetIndex   map[geometry.FacetKey]int
	vertexFacets map[geometry.Vector3][]*geometry.Facet
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		vertexIndex:  make(map[geometry.Vector3]int),
		facetIndex:   make(map[geometry.FacetKey]int),
		vertexFacets: make(map[geometry.Vector3][]*geometry.Facet),
	}
}

// AddVertex appends a vertex and returns its index. A vertex whose value was
// already added is appended again, but lookups by value keep resolving to the
// first index.
func (b *Builder) AddVertex(v geometry.Vector3) int {
	index := len(b.vertices)
	if _, ok := b.vertexIndex[v]; !ok {
		b.vertexIndex[v] = index
	}
	b.vertices = append(b.vertices, v)
	return index
}

// AddFacet appends the facet formed by three previously added vertices, in
// counterclockwise order. Indices are 0-based.
func (b *Builder) AddFacet(index1, index2, index3 int) error {
	indices := [3]int{index1, index2, index3}
	for _, index := range indices {
		if index < 0 || index >= len(b.vertices) {
			return errors.New("facet references an unknown vertex").
				WithType(ErrTypeMalformedInput).
				WithTag("index", index).
				WithTag("vertices", len(b.vertices))
		}
	}

	f := geometry.NewFacet(b.vertices[index1], b.vertices[index2], b.vertices[index3])
	if _, ok := b.facetIndex[f.Key()]; !ok {
		b.facetIndex[f.Key()] = len(b.facets)
	}
	b.faces = append(b.faces, indices)
	b.facets = append(b.facets, f)

	for _, v := range f.Vertices() {
		b.vertexFacets[v] = appendUnique(b.vertexFacets[v], f)
	}
	return nil
}

// VertexCount returns the number of vertices added so far
func (b *Builder) VertexCount() int {
	return len(b.vertices)
}

// FacetCount returns the number of facets added so far
func (b *Builder) FacetCount() int {
	return len(b.facets)
}

// Build returns the immutable mesh. The builder hands its data to the mesh
// and is reset to empty.
func (b *Builder) Build() (*Mesh, error) {
	if len(b.vertices) == 0 || len(b.facets) == 0 {
		return nil, errors.New("mesh needs at least one vertex and one facet").
			WithType(ErrTypeEmptyMesh).
			WithTag("vertices", len(b.vertices)).
			WithTag("facets", len(b.facets))
	}

	m := &Mesh{
		vertices:     b.vertices,
		vertexIndex:  b.vertexIndex,
		faces:        b.faces,
		facets:       b.facets,
		facetIndex:   b.facetIndex,
		vertexFacets: b.vertexFacets,
	}
	*b = *NewBuilder()

	edgeSum := 0.0
	for _, f := range m.facets {
		edgeSum += f.MeanEdgeLength()
	}
	m.meanEdgeLength = edgeSum / float64(len(m.facets))

	bounds := geometry.NewBoundingBox()
	var sum geometry.Vector3
	for _, v := range m.vertices {
		bounds.Extend(v)
		sum = sum.Add(v)
	}
	m.bounds = bounds
	m.center = sum.Mul(1.0 / float64(len(m.vertices)))

	m.level = chooseLevel(bounds.MaxSide(), m.meanEdgeLength)
	m.octree = octree.New(bounds)
	m.buildBuckets()

	cellSize := bounds.MaxSide() / float64(int(1)<<m.level)
	logs.WithTag("level", m.level).
		WithTag("mean_edge_length", m.meanEdgeLength).
		WithTag("cell_size", cellSize).
		WithTag("cell_edge_ratio", cellSize/m.meanEdgeLength).
		WithTag("buckets", len(m.buckets)).
		Debug("mesh built")

	return m, nil
}

// chooseLevel picks the octree level whose cells are about cellsPerEdge mean
// edge lengths wide.
func chooseLevel(maxSide, meanEdgeLength float64) int {
	level := math.Round(math.Log2(maxSide / (cellsPerEdge * meanEdgeLength)))
	switch {
	case math.IsNaN(level) || level < 0:
		return 0
	case level > octree.MaxLevel:
		return octree.MaxLevel
	default:
		return int(level)
	}
}

func (m *Mesh) buildBuckets() {
	m.buckets = make(map[int][]*geometry.Facet)
	for _, f := range m.facets {
		var seen [3]int
		for i, v := range f.Vertices() {
			index := m.octree.PointIndex(v, m.level)
			seen[i] = index
			if (i > 0 && seen[0] == index) || (i > 1 && seen[1] == index) {
				continue
			}
			m.buckets[index] = append(m.buckets[index], f)
		}
	}
}

// FromIndexed builds a mesh from raw vertex coordinates and 0-based triangle
// indices, the form geometry engines hand out their tessellations in.
func FromIndexed(vertices []geometry.Vector3, faces [][3]int) (*Mesh, error) {
	b := NewBuilder()
	for _, v := range vertices {
		b.AddVertex(v)
	}
	for i, face := range faces {
		if err := b.AddFacet(face[0], face[1], face[2]); err != nil {
			return nil, errors.New("invalid face").
				WithType(ErrTypeMalformedInput).
				WithTag("face", i).
				Wrap(err)
		}
	}
	return b.Build()
}

func appendUnique(facets []*geometry.Facet, f *geometry.Facet) []*geometry.Facet {
	for _, existing := range facets {
		if existing == f {
			return facets
		}
	}
	return append(facets, f)
}
