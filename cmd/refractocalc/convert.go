package main

import (
	"fmt"
	"strconv"

	"github.com/jgoulah/refractocalc/internal/gravity"
	"github.com/spf13/cobra"
)

var convertFrom string

var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert a gravity value between SG and Brix",
	Long: `Converts a single gravity value between specific gravity and degrees Brix.
The two conversions are independent empirical fits, so a round trip only
recovers the original value approximately.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "sg", "Unit of the input value (sg or brix)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing value: %w", err)
	}

	unit, err := gravity.ParseUnit(convertFrom)
	if err != nil {
		return err
	}

	if err := gravity.Validate(value, 0, unit); err != nil {
		return err
	}

	switch unit {
	case gravity.UnitBrix:
		fmt.Printf("%.2f °Bx = %.3f SG\n", value, gravity.ToSpecificGravity(value))
	default:
		fmt.Printf("%.3f SG = %.2f °Bx\n", value, gravity.ToBrix(value))
	}

	return nil
}
