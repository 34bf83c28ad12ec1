package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/model"
)

var (
	bulkCategory string
	bulkCustom   string
	bulkCountry  string
	bulkOutput   string
)

var bulkPrinter = message.NewPrinter(language.English)

// bulkProgressLine renders one sweep update. Grouped digits keep big
// running totals readable.
func bulkProgressLine(p model.BulkProgress) string {
	return bulkPrinter.Sprintf("[%d/%d] %s - %d businesses so far",
		p.Current, p.Total, p.CityName, p.TotalFound)
}

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Sweep every city of a country for a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := engine.New(newGeminiClient(), cfg,
			engine.OnProgress(func(p model.BulkProgress) {
				fmt.Fprintln(os.Stderr, bulkProgressLine(p))
			}),
		)

		res, err := e.Sweep(cmd.Context(), engine.SweepParams{
			Category:       bulkCategory,
			CustomCategory: bulkCustom,
			Country:        bulkCountry,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "sweep finished")
		return emitResult(res, bulkOutput)
	},
}

func init() {
	bulkCmd.Flags().StringVar(&bulkCategory, "category", "", "business category, or \"Other\" with --custom-category (required)")
	bulkCmd.Flags().StringVar(&bulkCustom, "custom-category", "", "free-text category used when --category is Other")
	bulkCmd.Flags().StringVar(&bulkCountry, "country", "US", "ISO country code to sweep")
	bulkCmd.Flags().StringVar(&bulkOutput, "output", "", "write businesses to a .csv or .xlsx file")
	_ = bulkCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(bulkCmd)
}
