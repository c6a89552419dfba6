package main

import (
	"fmt"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/philipparndt/goshape/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	infoLongest  int
	infoShortest int
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display statistics of a shape model",
	Long:  "Show vertex and facet counts, surface area, enclosed volume, edge statistics and the octree bucketing of a shape model.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoLongest, "longest", "l", 0, "Number of longest edges to list")
	infoCmd.Flags().IntVarP(&infoShortest, "shortest", "s", 0, "Number of shortest edges to list")
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	return printInfo(args[0], m)
}

func printInfo(filename string, m *mesh.Mesh) error {
	stats := analysis.Analyze(m)
	longest := analysis.FindLongestEdges(stats, infoLongest)
	shortest := analysis.FindShortestEdges(stats, infoShortest)

	if jsonOutput {
		return printJSON(struct {
			File     string              `json:"file"`
			Stats    *analysis.Stats     `json:"stats"`
			Longest  []analysis.EdgeInfo `json:"longest_edges,omitempty"`
			Shortest []analysis.EdgeInfo `json:"shortest_edges,omitempty"`
		}{filename, stats, longest, shortest})
	}

	fmt.Println("Shape Model Information")
	fmt.Println("=======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", stats.VertexCount)
	fmt.Printf("  Facets: %d\n", stats.FacetCount)
	fmt.Printf("  Edges: %d\n", stats.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n", stats.SurfaceArea)
	fmt.Printf("  Enclosed Volume: %.6f cubic units\n\n", stats.Volume)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.BoundingBox.Max))
	fmt.Printf("  Vertex Centroid: %s\n\n", analysis.FormatVector(stats.Center))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", stats.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", stats.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", stats.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", stats.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", stats.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", stats.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", stats.AvgEdgeLength)

	fmt.Println("Octree:")
	fmt.Printf("  Level: %d\n", stats.OctreeLevel)
	fmt.Printf("  Occupied Cells: %d\n", stats.BucketCount)
	fmt.Printf("  Facets per Cell: max %d, average %.2f\n", stats.MaxBucketSize, stats.AvgBucketSize)

	printEdges("Longest Edges", longest)
	printEdges("Shortest Edges", shortest)
	return nil
}

func printEdges(title string, edges []analysis.EdgeInfo) {
	if len(edges) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for i, edge := range edges {
		fmt.Printf("  %d. %s -> %s  %s (facet %d)\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			analysis.FormatMeasurement(edge.Length, ""),
			edge.FacetID+1)
	}
}
