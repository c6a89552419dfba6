package main

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
)

var (
	transformOutput    string
	transformScale     float64
	transformRotX      float64
	transformRotY      float64
	transformRotZ      float64
	transformTranslate vectorValue
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Scale, rotate and translate a shape model",
	Long: `Write a transformed copy of a shape model. Scaling and rotation are about the
vertex centroid and are applied before the translation. Rotations are applied
about X, then Y, then Z.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "Output file (.stl for binary STL)")
	transformCmd.Flags().Float64Var(&transformScale, "scale", 1, "Scale factor")
	transformCmd.Flags().Float64Var(&transformRotX, "rx", 0, "Rotation about X in degrees")
	transformCmd.Flags().Float64Var(&transformRotY, "ry", 0, "Rotation about Y in degrees")
	transformCmd.Flags().Float64Var(&transformRotZ, "rz", 0, "Rotation about Z in degrees")
	transformCmd.Flags().Var(&transformTranslate, "translate", "Translation")
	transformCmd.MarkFlagRequired("output")
}

func runTransform(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	if transformScale != 1 {
		if m, err = m.Scale(transformScale); err != nil {
			return err
		}
	}

	if transformRotX != 0 || transformRotY != 0 || transformRotZ != 0 {
		rotation := geometry.RotationZ(unit.AngleFromDeg(transformRotZ)).
			Mul(geometry.RotationY(unit.AngleFromDeg(transformRotY))).
			Mul(geometry.RotationX(unit.AngleFromDeg(transformRotX)))
		if m, err = m.Rotate(rotation); err != nil {
			return err
		}
	}

	if !transformTranslate.IsZero() {
		if m, err = m.Translate(transformTranslate.Vector3); err != nil {
			return err
		}
	}

	if err := m.WriteFile(transformOutput); err != nil {
		return err
	}

	logs.WithTag("path", transformOutput).
		WithTag("vertices", m.VertexCount()).
		WithTag("facets", m.FacetCount()).
		Info("shape model written")

	if jsonOutput {
		return printJSON(struct {
			Output      string               `json:"output"`
			BoundingBox geometry.BoundingBox `json:"bounding_box"`
		}{transformOutput, m.BoundingBox()})
	}
	fmt.Printf("Wrote %s (%s)\n", transformOutput, m.BoundingBox())
	return nil
}
