package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

var areaExact bool

var areaCmd = &cobra.Command{
	Use:   "area [file]",
	Short: "Print the total roof surface area in square feet",
	Args:  cobra.ExactArgs(1),
	Run:   runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
	areaCmd.Flags().BoolVar(&areaExact, "exact", false, "print the unrounded area")
}

func runArea(cmd *cobra.Command, args []string) {
	model, err := mesh.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing model file: %v\n", err)
		os.Exit(1)
	}

	area := units.SquareMetersToSquareFeet(model.SurfaceArea())
	if areaExact {
		fmt.Printf("%.6f sq ft\n", area)
	} else {
		fmt.Printf("%.0f sq ft\n", units.RoundArea(area))
	}
}
