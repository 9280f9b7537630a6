package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgoulah/refractocalc/internal/config"
	"github.com/jgoulah/refractocalc/internal/database"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "refractocalc",
	Short: "Correct refractometer readings taken during fermentation",
	Long: `Refractocalc corrects refractometer readings for the skew caused by dissolved
alcohol and derives ABV, apparent attenuation, and calories from the corrected
gravity. Readings can be logged per batch to a local SQLite database and
published to Home Assistant or MQTT for fermentation dashboards.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./readings.db)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path (local directory)
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "readings.db"
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// openDB opens the database connection
func openDB() (*database.DB, error) {
	path := getDBPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}
