package main

import (
	"github.com/spf13/cobra"

	"github.com/leadlens/leadlens-cli/internal/engine"
)

var (
	deepdiveName    string
	deepdiveCountry string
	deepdiveCity    string
	deepdiveOutput  string
)

var deepdiveCmd = &cobra.Command{
	Use:   "deepdive",
	Short: "Build an exhaustive report for one business",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := engine.New(newGeminiClient(), cfg)
		res, err := e.DeepDive(cmd.Context(), engine.DeepDiveParams{
			BusinessName: deepdiveName,
			Country:      deepdiveCountry,
			City:         deepdiveCity,
		})
		if err != nil {
			return err
		}
		return emitResult(res, deepdiveOutput)
	},
}

func init() {
	deepdiveCmd.Flags().StringVar(&deepdiveName, "name", "", "business name (required)")
	deepdiveCmd.Flags().StringVar(&deepdiveCountry, "country", "US", "ISO country code")
	deepdiveCmd.Flags().StringVar(&deepdiveCity, "city", "", "city the business is in (required)")
	deepdiveCmd.Flags().StringVar(&deepdiveOutput, "output", "", "write the business to a .csv or .xlsx file")
	_ = deepdiveCmd.MarkFlagRequired("name")
	_ = deepdiveCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(deepdiveCmd)
}
