package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/rank"
)

var (
	rankBusiness   string
	rankIdentifier string
	rankKeyword    string
	rankCountry    string
	rankCity       string
	rankImageOut   string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Check a business's local-search rank",
	Long:  "With --keyword, checks the rank for that keyword and captures a results screenshot. Without it, discovers every keyword the business ranks for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := rank.New(newGeminiClient(), cfg)
		res, err := checker.Check(cmd.Context(), rank.Params{
			BusinessName: rankBusiness,
			Identifier:   rankIdentifier,
			Keyword:      rankKeyword,
			Country:      rankCountry,
			City:         rankCity,
		})
		if err != nil {
			return err
		}

		if rankImageOut != "" && res.Image != nil {
			if err := os.WriteFile(rankImageOut, res.Image.Data, 0o644); err != nil {
				return eris.Wrap(err, "write screenshot")
			}
			zap.L().Info("screenshot written",
				zap.String("path", rankImageOut),
				zap.String("mime", res.Image.MIMEType))
		}

		out := *res
		out.Image = nil // bytes go to --image-out, not stdout
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankBusiness, "business", "", "business name (required)")
	rankCmd.Flags().StringVar(&rankIdentifier, "identifier", "", "website or phone to disambiguate the business")
	rankCmd.Flags().StringVar(&rankKeyword, "keyword", "", "keyword to check; omit to discover all ranking keywords")
	rankCmd.Flags().StringVar(&rankCountry, "country", "US", "ISO country code")
	rankCmd.Flags().StringVar(&rankCity, "city", "", "city to search from (required)")
	rankCmd.Flags().StringVar(&rankImageOut, "image-out", "", "write the results screenshot to this path")
	_ = rankCmd.MarkFlagRequired("business")
	_ = rankCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(rankCmd)
}
