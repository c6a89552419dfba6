package mesh

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/pkg/geometry"
)

const stlHeaderSize = 80

// stlBuilder merges STL corners with equal coordinates into shared
// vertices, so the mesh gets the adjacency STL files do not store.
type stlBuilder struct {
	*Builder
	shared map[geometry.Vector3]int
}

func newSTLBuilder() *stlBuilder {
	return &stlBuilder{
		Builder:  NewBuilder(),
		shared:  make(map[geometry.Vector3]int),
	}
}

func (b *stlBuilder) addTriangle(v1, v2, v3 geometry.Vector3) error {
	var indices [3]int
	for i, v := range [3]geometry.Vector3{v1, v2, v3} {
		index, ok := b.shared[v]
		if !ok {
			index = b.AddVertex(v)
			b.shared[v] = index
		}
		indices[i] = index
	}
	return b.AddFacet(indices[0], indices[1], indices[2])
}

// ReadSTL reads an ASCII or binary STL stream. The format is detected from
// the leading "solid" keyword. Stored facet normals are ignored; normals are
// derived from the vertex winding.
func ReadSTL(r io.Reader) (*Mesh, error) {
	reader := bufio.NewReader(r)
	header, err := reader.Peek(5)
	if err != nil && len(header) == 0 {
		return nil, errors.New("reading stl header failed").
			WithType(ErrTypeIO).
			Wrap(err)
	}

	var b *stlBuilder
	if strings.HasPrefix(string(header), "solid") {
		b, err = parseASCIISTL(reader)
	} else {
		b, err = parseBinarySTL(reader)
	}
	if err != nil {
		return nil, err
	}

	logs.WithTag("vertices", b.VertexCount()).
		WithTag("facets", b.FacetCount()).
		Debug("stl read")

	return b.Build()
}

func parseASCIISTL(r io.Reader) (*stlBuilder, error) {
	b := newSTLBuilder()
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	var corners []geometry.Vector3

	for scanner.Scan() {
		lineNumber++
		text := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "vertex":
			if len(fields) != 4 {
				return nil, malformed("expected three values", lineNumber, text, nil)
			}
			var coords [3]float64
			for i, field := range fields[1:] {
				value, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, malformed("invalid number "+strconv.Quote(field), lineNumber, text, err)
				}
				coords[i] = value
			}
			corners = append(corners, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "endfacet":
			if len(corners) != 3 {
				return nil, malformed("facet needs three vertices", lineNumber, text, nil)
			}
			if err := b.addTriangle(corners[0], corners[1], corners[2]); err != nil {
				return nil, err
			}
			corners = corners[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading ascii stl failed").
			WithType(ErrTypeIO).
			WithTag("line", lineNumber).
			Wrap(err)
	}
	return b, nil
}

// stlTriangle is the on-disk record of a binary STL facet
type stlTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

func parseBinarySTL(r io.Reader) (*stlBuilder, error) {
	header := make([]byte, stlHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.New("reading stl header failed").
			WithType(ErrTypeIO).
			Wrap(err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.New("reading stl triangle count failed").
			WithType(ErrTypeIO).
			Wrap(err)
	}

	b := newSTLBuilder()
	for i := uint32(0); i < count; i++ {
		var t stlTriangle
		if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
			return nil, errors.New("reading stl triangle failed").
				WithType(ErrTypeIO).
				WithTag("triangle", i).
				WithTag("count", count).
				Wrap(err)
		}

		var corners [3]geometry.Vector3
		for j, v := range t.Vertices {
			corners[j] = geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
		}
		if err := b.addTriangle(corners[0], corners[1], corners[2]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// WriteSTL writes the mesh as binary STL. Coordinates are narrowed to
// float32 as the format requires.
func (m *Mesh) WriteSTL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	header := make([]byte, stlHeaderSize)
	copy(header, "goshape")

	if _, err := bw.Write(header); err != nil {
		return errors.New("writing stl header failed").WithType(ErrTypeIO).Wrap(err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.facets))); err != nil {
		return errors.New("writing stl triangle count failed").WithType(ErrTypeIO).Wrap(err)
	}

	for _, f := range m.facets {
		var t stlTriangle
		n := f.Normal()
		t.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		for j, v := range f.Vertices() {
			t.Vertices[j] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		if err := binary.Write(bw, binary.LittleEndian, &t); err != nil {
			return errors.New("writing stl triangle failed").WithType(ErrTypeIO).Wrap(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.New("writing stl failed").WithType(ErrTypeIO).Wrap(err)
	}
	return nil
}
