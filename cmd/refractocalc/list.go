package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	listBatch   string
	listBatches bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged readings",
	Long:  `Displays corrected readings logged to the database, newest first.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listBatch, "batch", "", "Filter by batch name")
	listCmd.Flags().BoolVar(&listBatches, "batches", false, "Only list batch names")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if listBatches {
		batches, err := db.Batches()
		if err != nil {
			return fmt.Errorf("listing batches: %w", err)
		}
		if len(batches) == 0 {
			fmt.Println("No batches found")
			return nil
		}
		for _, b := range batches {
			fmt.Println(b)
		}
		return nil
	}

	readings, err := db.ListReadings(listBatch)
	if err != nil {
		return fmt.Errorf("listing readings: %w", err)
	}

	if len(readings) == 0 {
		if listBatch != "" {
			fmt.Printf("No readings found for batch %q\n", listBatch)
		} else {
			fmt.Println("No readings found")
		}
		return nil
	}

	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Printf("%-14s  %8s  %8s  %8s  %7s  %7s  %s\n", "Batch", "OG", "FG", "Adj FG", "ABV%", "Att%", "When")
	fmt.Println("--------------------------------------------------------------------------------")

	for _, r := range readings {
		fmt.Printf("%-14s  %8.3f  %8.3f  %8.3f  %7.2f  %7.2f  %s\n",
			r.Batch, r.OriginalSG, r.FinalSG, r.AdjustedFinalSG, r.ABV, r.Attenuation,
			humanize.Time(r.CreatedAt))
	}

	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Printf("Total: %d readings\n", len(readings))

	return nil
}
