package main

import (
	"fmt"
	"strconv"

	"github.com/jgoulah/refractocalc/internal/gravity"
	"github.com/jgoulah/refractocalc/pkg/models"
	"github.com/spf13/cobra"
)

var (
	correctBrix  bool
	correctSave  bool
	correctBatch string
)

var correctCmd = &cobra.Command{
	Use:   "correct [original] [final]",
	Short: "Correct a final refractometer reading for dissolved alcohol",
	Long: `Applies the Terrill correction to a pair of refractometer readings taken
before and during/after fermentation, then derives ABV, apparent attenuation,
and calories from the corrected gravity.

Readings are specific gravity by default; pass --brix if your refractometer
reads in degrees Brix (or set default_unit in config.yaml).`,
	Args: cobra.ExactArgs(2),
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().BoolVar(&correctBrix, "brix", false, "Interpret readings as degrees Brix")
	correctCmd.Flags().BoolVar(&correctSave, "save", false, "Log the corrected reading to the database")
	correctCmd.Flags().StringVar(&correctBatch, "batch", "", "Batch name for --save (default from config)")
	rootCmd.AddCommand(correctCmd)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	og, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing original gravity: %w", err)
	}
	fg, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing final gravity: %w", err)
	}

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	unit, err := resolveUnit(cmd, cfg.GetDefaultUnit())
	if err != nil {
		return err
	}

	result, err := gravity.Compute(og, fg, unit)
	if err != nil {
		return err
	}

	fmt.Printf("Original Gravity:      %.3f SG / %.2f °Bx\n", result.OriginalSG, result.OriginalBrix)
	fmt.Printf("Final Gravity:         %.3f SG / %.2f °Bx\n", result.FinalSG, result.FinalBrix)
	fmt.Printf("Adjusted Final:        %.3f SG / %.2f °Bx\n", result.AdjustedFinalSG, result.AdjustedFinalBrix)
	fmt.Printf("ABV:                   %.2f%%\n", result.ABV)
	fmt.Printf("Apparent Attenuation:  %.2f%%\n", result.Attenuation)
	fmt.Printf("Calories:              %.2f kcal per 12 oz\n", result.Calories)

	if !correctSave {
		return nil
	}

	batch := correctBatch
	if batch == "" {
		batch = cfg.GetDefaultBatch()
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	reading := models.Reading{
		Batch:             batch,
		Unit:              unit.String(),
		OriginalSG:        result.OriginalSG,
		OriginalBrix:      result.OriginalBrix,
		FinalSG:           result.FinalSG,
		FinalBrix:         result.FinalBrix,
		AdjustedFinalSG:   result.AdjustedFinalSG,
		AdjustedFinalBrix: result.AdjustedFinalBrix,
		ABV:               result.ABV,
		Attenuation:       result.Attenuation,
		Calories:          result.Calories,
	}

	if err := db.InsertReading(&reading); err != nil {
		return fmt.Errorf("saving reading: %w", err)
	}

	fmt.Printf("✓ Saved to batch %q\n", batch)
	return nil
}

// resolveUnit picks the input unit from the --brix flag if given, falling
// back to the configured default
func resolveUnit(cmd *cobra.Command, defaultUnit string) (gravity.Unit, error) {
	if cmd.Flags().Changed("brix") {
		if correctBrix {
			return gravity.UnitBrix, nil
		}
		return gravity.UnitSG, nil
	}
	return gravity.ParseUnit(defaultUnit)
}
