package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/refractocalc/internal/publisher"
	"github.com/jgoulah/refractocalc/pkg/models"
	"github.com/spf13/cobra"
)

var (
	publishBatch string
	publishAll   bool
	publishLimit int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish logged readings to Home Assistant / MQTT",
	Long:  `Reads logged readings from the database and publishes them to Home Assistant via HTTP API and/or an MQTT broker.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishBatch, "batch", "", "Only publish readings for this batch")
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Force republish all readings (ignore published flag)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 0, "Limit number of readings to publish (0 = no limit)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.HomeAssistant.Enabled && !cfg.MQTT.Enabled {
		return fmt.Errorf("neither Home Assistant nor MQTT is enabled in config")
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix(), cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Get readings based on --all flag
	var readings []models.Reading
	if publishAll {
		readings, err = db.ListReadings(publishBatch)
	} else {
		readings, err = db.ListUnpublishedReadings(publishBatch)
	}
	if err != nil {
		return fmt.Errorf("listing readings: %w", err)
	}

	if len(readings) == 0 {
		if publishAll {
			fmt.Println("No readings found")
		} else {
			fmt.Println("No unpublished readings found")
		}
		return nil
	}

	// Apply limit if specified
	if publishLimit > 0 && len(readings) > publishLimit {
		readings = readings[:publishLimit]
		fmt.Printf("Limiting to %d readings (--limit flag)\n", publishLimit)
	}

	// Publish each reading
	fmt.Printf("Publishing %d readings...\n", len(readings))
	published := 0
	for i, reading := range readings {
		fmt.Printf("[%d/%d] Publishing %s %.3f SG (%.2f%% ABV)... ",
			i+1, len(readings), reading.Batch, reading.AdjustedFinalSG, reading.ABV)
		if err := pub.Publish(reading); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		// Mark reading as published in database
		if err := db.MarkPublished(reading.ID); err != nil {
			fmt.Printf("✓ (warning: failed to mark as published: %v)\n", err)
		} else {
			fmt.Printf("✓\n")
		}
		published++
	}

	fmt.Printf("\nSuccessfully published %d/%d readings\n", published, len(readings))
	return nil
}
