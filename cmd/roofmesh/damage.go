package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rooflens/roofmesh/pkg/damage"
	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/units"
)

var classificationFile string

// classificationRecord is the JSON document produced by the damage
// detection pipeline: the category vocabulary plus face assignments
// keyed by face index.
type classificationRecord struct {
	Categories []string          `json:"categories"`
	Faces      map[string]string `json:"faces"`
}

var damageCmd = &cobra.Command{
	Use:   "damage [file]",
	Short: "Aggregate damaged roof area by category",
	Long: `Apply a damage classification to a roof model and report damaged
area per category together with the overall damage percentage.`,
	Args: cobra.ExactArgs(1),
	Run:  runDamage,
}

func init() {
	rootCmd.AddCommand(damageCmd)

	damageCmd.Flags().StringVar(&classificationFile, "classification", "",
		"JSON file with damage categories and face assignments")
	damageCmd.MarkFlagRequired("classification")
}

func runDamage(cmd *cobra.Command, args []string) {
	model, err := mesh.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing model file: %v\n", err)
		os.Exit(1)
	}

	record, err := readClassification(classificationFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading classification: %v\n", err)
		os.Exit(1)
	}

	classification := damage.NewClassification(
		model.TriangleCount(),
		damage.NewVocabulary(record.Categories...),
	)
	for key, category := range record.Faces {
		face, err := strconv.Atoi(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid face index %q\n", key)
			os.Exit(1)
		}
		if err := classification.Assign(face, damage.Category(category)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	summary := damage.Aggregate(model, classification)

	fmt.Println("Damage Assessment")
	fmt.Println("=================")
	fmt.Printf("Total roof area: %.0f sq ft\n\n", units.RoundArea(summary.TotalRoofSqFt))

	if len(summary.PerCategorySqFt) == 0 {
		fmt.Println("No damage detected.")
		return
	}

	for _, category := range classification.Vocabulary().Categories() {
		area, ok := summary.PerCategorySqFt[category]
		if !ok {
			continue
		}
		fmt.Printf("  %-20s %8.0f sq ft\n", category, units.RoundArea(area))
	}
	fmt.Printf("\nTotal damaged: %.0f sq ft (%.1f%%)\n",
		units.RoundArea(summary.TotalDamageSqFt), summary.DamagePercent)
}

func readClassification(path string) (*classificationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var record classificationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
