package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/whatsapp"
)

var (
	waNumbers []string
	waFile    string
)

var whatsappCmd = &cobra.Command{
	Use:   "whatsapp",
	Short: "Check WhatsApp status for a batch of phone numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers := waNumbers
		if waFile != "" {
			f, err := os.Open(waFile)
			if err != nil {
				return eris.Wrap(err, "open numbers file")
			}
			defer f.Close() //nolint:errcheck
			loaded, err := whatsapp.LoadNumbers(f)
			if err != nil {
				return err
			}
			numbers = append(numbers, loaded...)
		}

		checker := whatsapp.New(newGeminiClient(), cfg,
			whatsapp.WithPacer(engine.NewPacer(time.Duration(cfg.Sweep.DelayMillis)*time.Millisecond)),
			whatsapp.OnProgress(func(done, total int) {
				fmt.Fprintf(os.Stderr, "[%d/%d] checked\n", done, total)
			}),
		)

		rows, err := checker.CheckAll(cmd.Context(), numbers)
		if err != nil {
			return err
		}

		type outRow struct {
			Number string `json:"number"`
			Status string `json:"status"`
			Reason string `json:"reason"`
			Link   string `json:"link"`
			Error  string `json:"error,omitempty"`
		}
		out := make([]outRow, 0, len(rows))
		for _, r := range rows {
			o := outRow{
				Number: r.Number,
				Status: string(r.Result.Status),
				Reason: r.Result.Reason,
				Link:   r.Link,
			}
			if r.Err != nil {
				o.Error = r.Err.Error()
			}
			out = append(out, o)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	whatsappCmd.Flags().StringSliceVar(&waNumbers, "numbers", nil, "E.164 phone numbers to check")
	whatsappCmd.Flags().StringVar(&waFile, "file", "", "CSV file with one number per line (first column)")
	rootCmd.AddCommand(whatsappCmd)
}
