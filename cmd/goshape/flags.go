package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/mesh"
	"github.com/segmentio/encoding/json"
)

// vectorValue is a flag holding a vector written as "x,y,z"
type vectorValue struct {
	geometry.Vector3
	set bool
}

func (v *vectorValue) String() string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func (v *vectorValue) Set(s string) error {
	vec, err := parseVector(s)
	if err != nil {
		return err
	}
	v.Vector3 = vec
	v.set = true
	return nil
}

func (v *vectorValue) Type() string {
	return "x,y,z"
}

func parseVector(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, errors.New("vector needs three comma separated values").
			WithTag("value", s)
	}

	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, errors.New("invalid vector component").
				WithTag("value", s).
				Wrap(err)
		}
		coords[i] = value
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func loadMesh(path string) (*mesh.Mesh, error) {
	m, err := mesh.ReadFile(path)
	if err != nil {
		return nil, errors.New("loading shape model failed").
			WithTag("path", path).
			Wrap(err)
	}
	return m, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = os.Stdout.Write(b)
	return err
}
