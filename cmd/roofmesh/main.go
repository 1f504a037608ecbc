package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roofmesh",
	Short: "A CLI tool for measuring 3D roof models",
	Long: `roofmesh analyzes triangulated 3D roof models. It reports surface
area, dimensions and pitch in real-world units, measures point-to-point
distances on the roof surface, and aggregates damaged area by category.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
