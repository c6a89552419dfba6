package main

import (
	"fmt"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	shadowSun  vectorValue
	shadowList bool
)

var shadowCmd = &cobra.Command{
	Use:   "shadow [file]",
	Short: "Count the facets shadowed from a point light",
	Long: `Test every facet against a point light at --sun. A facet is lit when it faces
the light and is the first facet met by the ray from the light to its center.`,
	Args: cobra.ExactArgs(1),
	RunE: runShadow,
}

func init() {
	rootCmd.AddCommand(shadowCmd)

	shadowCmd.Flags().Var(&shadowSun, "sun", "Light position")
	shadowCmd.Flags().BoolVar(&shadowList, "list", false, "List the lit facets")
	shadowCmd.MarkFlagRequired("sun")
}

func runShadow(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	shadowed, areaFraction := analysis.ShadowFraction(m, shadowSun.Vector3)

	var lit []int
	if shadowList {
		for i := 0; i < m.FacetCount(); i++ {
			if m.IsInShadow(m.Facet(i), shadowSun.Vector3) == 0 {
				lit = append(lit, i+1)
			}
		}
	}

	if jsonOutput {
		return printJSON(struct {
			Facets       int     `json:"facets"`
			Shadowed     int     `json:"shadowed"`
			AreaFraction float64 `json:"shadowed_area_fraction"`
			Lit          []int   `json:"lit,omitempty"`
		}{m.FacetCount(), shadowed, areaFraction, lit})
	}

	fmt.Printf("Light at %s\n", analysis.FormatVector(shadowSun.Vector3))
	fmt.Printf("  Shadowed facets: %d of %d\n", shadowed, m.FacetCount())
	fmt.Printf("  Shadowed area: %.2f%%\n", areaFraction*100)
	if shadowList {
		fmt.Printf("  Lit facets: %v\n", lit)
	}
	return nil
}
