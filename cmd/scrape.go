package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/export"
	"github.com/leadlens/leadlens-cli/internal/model"
)

var (
	scrapeCategory   string
	scrapeCustom     string
	scrapeCountry    string
	scrapeCity       string
	scrapeNearMe     bool
	scrapeLat        float64
	scrapeLng        float64
	scrapeRadius     float64
	scrapePages      int
	scrapeMinRating  float64
	scrapeMinReviews int
	scrapeOutput     string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Search business listings for a category and location",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		params := engine.ScrapeParams{
			Category:       scrapeCategory,
			CustomCategory: scrapeCustom,
			Mode:           engine.ModeSpecific,
			Country:        scrapeCountry,
			City:           scrapeCity,
		}
		if scrapeNearMe {
			params.Mode = engine.ModeNearMe
			params.Location = &model.UserLocation{Latitude: scrapeLat, Longitude: scrapeLng}
			params.RadiusMiles = scrapeRadius
		}

		e := engine.New(newGeminiClient(), cfg)
		session, err := e.Scrape(ctx, params)
		if err != nil {
			return err
		}

		// Later pages replace earlier ones; only the last page survives.
		for page := 2; page <= scrapePages && session.HasMore; page++ {
			if err := e.Advance(ctx, session, page); err != nil {
				return err
			}
		}

		result := *session.Result
		result.Businesses = resultFilter().Apply(result.Businesses)
		return emitResult(&result, scrapeOutput)
	},
}

func resultFilter() engine.Filter {
	var f engine.Filter
	if scrapeMinRating >= 0 {
		f.MinRating = &scrapeMinRating
	}
	if scrapeMinReviews >= 0 {
		f.MinReviews = &scrapeMinReviews
	}
	return f
}

// emitResult prints the result as JSON, or writes the businesses to a
// CSV/XLSX file when an output path is given.
func emitResult(res *model.ScrapeResult, output string) error {
	if output == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".csv":
		f, err := os.Create(output)
		if err != nil {
			return eris.Wrap(err, "create output file")
		}
		defer f.Close() //nolint:errcheck
		if err := export.WriteCSV(f, res.Businesses); err != nil {
			return err
		}
	case ".xlsx":
		if err := export.WriteXLSX(output, res.Businesses); err != nil {
			return err
		}
	default:
		return eris.Errorf("unsupported output extension %q (want .csv or .xlsx)", filepath.Ext(output))
	}

	zap.L().Info("export written",
		zap.String("path", output),
		zap.Int("businesses", len(res.Businesses)))
	return nil
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeCategory, "category", "", "business category, or \"Other\" with --custom-category (required)")
	scrapeCmd.Flags().StringVar(&scrapeCustom, "custom-category", "", "free-text category used when --category is Other")
	scrapeCmd.Flags().StringVar(&scrapeCountry, "country", "US", "ISO country code")
	scrapeCmd.Flags().StringVar(&scrapeCity, "city", "", "city to search")
	scrapeCmd.Flags().BoolVar(&scrapeNearMe, "near-me", false, "search around a lat/lng fix instead of a city")
	scrapeCmd.Flags().Float64Var(&scrapeLat, "lat", 0, "latitude for --near-me")
	scrapeCmd.Flags().Float64Var(&scrapeLng, "lng", 0, "longitude for --near-me")
	scrapeCmd.Flags().Float64Var(&scrapeRadius, "radius", 0, "search radius in miles for --near-me")
	scrapeCmd.Flags().IntVar(&scrapePages, "pages", 1, "walk pages 1..N while full pages keep coming")
	scrapeCmd.Flags().Float64Var(&scrapeMinRating, "min-rating", -1, "drop businesses rated below this")
	scrapeCmd.Flags().IntVar(&scrapeMinReviews, "min-reviews", -1, "drop businesses with fewer reviews than this")
	scrapeCmd.Flags().StringVar(&scrapeOutput, "output", "", "write businesses to a .csv or .xlsx file")
	_ = scrapeCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(scrapeCmd)
}
