package main

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	rayOrigin    vectorValue
	rayDirection vectorValue
	rayLimit     int
)

var raycastCmd = &cobra.Command{
	Use:   "raycast [file]",
	Short: "List the facets crossed by a ray",
	Long:  "Cast a ray from --origin along --dir and list the facets it crosses, nearest first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRaycast,
}

func init() {
	rootCmd.AddCommand(raycastCmd)

	raycastCmd.Flags().Var(&rayOrigin, "origin", "Ray origin")
	raycastCmd.Flags().Var(&rayDirection, "dir", "Ray direction")
	raycastCmd.Flags().IntVarP(&rayLimit, "count", "n", 0, "Maximum number of hits to list (0 lists all)")
	raycastCmd.MarkFlagRequired("origin")
	raycastCmd.MarkFlagRequired("dir")
}

type hitResult struct {
	Facet    int              `json:"facet"`
	Distance float64          `json:"distance"`
	Point    geometry.Vector3 `json:"point"`
	Normal   geometry.Vector3 `json:"normal"`
}

func runRaycast(cmd *cobra.Command, args []string) error {
	if rayDirection.IsZero() {
		return errors.New("ray direction must not be zero")
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	hits := m.RayCast(rayOrigin.Vector3, rayDirection.Vector3)
	if rayLimit > 0 && len(hits) > rayLimit {
		hits = hits[:rayLimit]
	}

	results := make([]hitResult, 0, len(hits))
	for _, h := range hits {
		index, _ := m.FacetIndex(h.Facet)
		point := h.Point(rayOrigin.Vector3, rayDirection.Vector3)
		results = append(results, hitResult{
			Facet:    index + 1,
			Distance: point.Distance(rayOrigin.Vector3),
			Point:    point,
			Normal:   h.Facet.Normal(),
		})
	}

	if jsonOutput {
		return printJSON(results)
	}

	fmt.Printf("Ray from %s along %s\n", analysis.FormatVector(rayOrigin.Vector3), analysis.FormatVector(rayDirection.Vector3))
	if len(results) == 0 {
		fmt.Println("No facets hit")
		return nil
	}
	for i, r := range results {
		fmt.Printf("  %d. facet %d at %s (distance %.6f, normal %s)\n",
			i+1, r.Facet, analysis.FormatVector(r.Point), r.Distance, analysis.FormatVector(r.Normal))
	}
	return nil
}
