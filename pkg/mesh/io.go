package mesh

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/pkg/geometry"
)

// Records found in Wavefront OBJ exports that carry no shape information.
var ignoredRecords = map[string]bool{
	"vn":     true,
	"vt":     true,
	"vp":     true,
	"g":      true,
	"o":      true,
	"s":      true,
	"usemtl": true,
	"mtllib": true,
}

// ReadFile loads a mesh from path. Files ending in .stl are read as STL,
// everything else as mesh text.
func ReadFile(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening mesh file failed").
			WithType(ErrTypeIO).
			WithTag("path", path).
			Wrap(err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".stl") {
		return ReadSTL(file)
	}
	return Read(file)
}

type faceLine struct {
	line    int
	text    string
	indices [3]int
}

// Read parses mesh text: "v x y z" vertex lines and "f i j k" facet lines
// with 1-based vertex numbers. Face tokens may carry slash-separated
// texture and normal numbers, which are ignored. Blank lines and lines
// starting with # are skipped. Faces may reference vertices defined later
// in the input.
func Read(r io.Reader) (*Mesh, error) {
	b := NewBuilder()
	var faces []faceLine

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		record := strings.ToLower(fields[0])
		switch {
		case record == "v":
			coords, err := parseFields(fields, lineNumber, text, parseCoordinate)
			if err != nil {
				return nil, err
			}
			b.AddVertex(geometry.NewVector3(coords[0], coords[1], coords[2]))

		case record == "f":
			numbers, err := parseFields(fields, lineNumber, text, parseVertexNumber)
			if err != nil {
				return nil, err
			}
			faces = append(faces, faceLine{
				line: lineNumber,
				text: text,
				indices: [3]int{
					int(numbers[0]) - 1,
					int(numbers[1]) - 1,
					int(numbers[2]) - 1,
				},
			})

		case ignoredRecords[record]:

		default:
			return nil, malformed("unknown record", lineNumber, text, nil)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading mesh text failed").
			WithType(ErrTypeIO).
			WithTag("line", lineNumber).
			Wrap(err)
	}

	for _, face := range faces {
		if err := b.AddFacet(face.indices[0], face.indices[1], face.indices[2]); err != nil {
			return nil, malformed("face references an unknown vertex", face.line, face.text, err)
		}
	}

	logs.WithTag("vertices", b.VertexCount()).
		WithTag("facets", b.FacetCount()).
		Debug("mesh read")

	return b.Build()
}

func parseFields(fields []string, line int, text string, parse func(string) (float64, error)) ([3]float64, error) {
	var values [3]float64
	if len(fields) != 4 {
		return values, malformed("expected three values", line, text, nil)
	}
	for i, field := range fields[1:] {
		value, err := parse(field)
		if err != nil {
			return values, malformed("invalid number "+strconv.Quote(field), line, text, err)
		}
		values[i] = value
	}
	return values, nil
}

func parseCoordinate(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

func parseVertexNumber(token string) (float64, error) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.Atoi(token)
	return float64(n), err
}

func malformed(msg string, line int, text string, cause error) error {
	err := errors.New(msg).
		WithType(ErrTypeMalformedInput).
		WithTag("line", line).
		WithTag("text", text)
	if cause != nil {
		return err.Wrap(cause)
	}
	return err
}

// WriteFile writes the mesh to path, as binary STL when the path ends in
// .stl and as mesh text otherwise.
func (m *Mesh) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New("creating mesh file failed").
			WithType(ErrTypeIO).
			WithTag("path", path).
			Wrap(err)
	}

	write := m.Write
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		write = m.WriteSTL
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.New("closing mesh file failed").
			WithType(ErrTypeIO).
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

// Write emits one "v" line per vertex and one "f" line per facet, in
// insertion order. Coordinates are written with the shortest representation
// that reads back to the same value.
func (m *Mesh) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 96)

	for _, v := range m.vertices {
		buf = append(buf[:0], 'v')
		for _, c := range v.Coords() {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	for _, face := range m.faces {
		buf = append(buf[:0], 'f')
		for _, index := range face {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(index+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	if err := bw.Flush(); err != nil {
		return errors.New("writing mesh text failed").
			WithType(ErrTypeIO).
			Wrap(err)
	}
	return nil
}
