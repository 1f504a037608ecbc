package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rooflens/roofmesh/pkg/analysis"
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display measurements of a roof model",
	Long:  "Show roof surface area, dimensions, pitch and mesh statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := mesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing model file: %v\n", err)
		os.Exit(1)
	}

	report := analysis.Analyze(model)

	fmt.Println("Roof Model Information")
	fmt.Println("======================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Surface:")
	fmt.Printf("  Total area: %.0f sq ft\n", units.RoundArea(report.TotalAreaSqFt))
	fmt.Printf("  Pitch: %s (%.1f degrees)\n\n", report.Pitch.Ratio, report.Pitch.Degrees)

	fmt.Println("Dimensions:")
	fmt.Printf("  Length: %.2f ft\n", report.LengthFt)
	fmt.Printf("  Width:  %.2f ft\n", report.WidthFt)
	fmt.Printf("  Height: %.2f ft\n\n", report.HeightFt)

	fmt.Println("Features:")
	fmt.Printf("  Components: %d\n", report.Features.TotalComponents)
	fmt.Printf("  Chimneys: %d, Skylights: %d, Vents: %d\n\n",
		report.Features.Chimneys, report.Features.Skylights, report.Features.Vents)

	fmt.Println("Mesh:")
	fmt.Printf("  Triangles: %d\n", report.TriangleCount)
	fmt.Printf("  Edges: %d\n", report.EdgeCount)
	fmt.Printf("  Edge length: min %.2f ft, max %.2f ft, avg %.2f ft\n",
		report.MinEdgeFt, report.MaxEdgeFt, report.AvgEdgeFt)
}
