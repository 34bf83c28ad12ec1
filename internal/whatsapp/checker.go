// Package whatsapp runs messaging-status checks over batches of phone
// numbers. The whole batch is validated before the first gateway call;
// the checks themselves run strictly sequentially and a failed number
// never stops the rest of the batch.
package whatsapp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/config"
	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/model"
	"github.com/leadlens/leadlens-cli/internal/parse"
	"github.com/leadlens/leadlens-cli/internal/prompt"
	"github.com/leadlens/leadlens-cli/pkg/gemini"
)

// Row is the outcome for one number in a batch.
type Row struct {
	Number string
	Result model.WhatsAppCheckResult
	Link   string // wa.me chat link
	Err    error  // set when the check itself failed
}

// Checker drives batch status checks.
type Checker struct {
	client     gemini.Client
	cfg        *config.Config
	pacer      engine.Pacer
	log        *zap.Logger
	onProgress func(done, total int)
}

// Option configures the checker.
type Option func(*Checker)

// WithPacer overrides the inter-call pacing policy.
func WithPacer(p engine.Pacer) Option {
	return func(c *Checker) { c.pacer = p }
}

// WithLogger overrides the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// OnProgress registers an observer fired after every checked number.
func OnProgress(fn func(done, total int)) Option {
	return func(c *Checker) { c.onProgress = fn }
}

// New creates a checker over the given gateway client.
func New(client gemini.Client, cfg *config.Config, opts ...Option) *Checker {
	c := &Checker{
		client: client,
		cfg:    cfg,
		pacer:  engine.NewPacer(0),
		log:    zap.L(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CheckAll validates every number up front, then checks them one at a
// time. Any invalid number fails the whole batch before a single call is
// made. A per-number gateway or parse failure is captured on its row
// with an Unknown status and the batch continues.
func (c *Checker) CheckAll(ctx context.Context, numbers []string) ([]Row, error) {
	cleaned := make([]string, 0, len(numbers))
	var invalid []string
	for _, n := range numbers {
		cn := parse.CleanNumber(n)
		if !parse.ValidE164(cn) {
			invalid = append(invalid, n)
			continue
		}
		cleaned = append(cleaned, cn)
	}
	if len(invalid) > 0 {
		return nil, engine.NewValidationError(
			"invalid phone numbers (must be E.164, e.g. +14155552671): %s",
			strings.Join(invalid, ", "))
	}
	if len(cleaned) == 0 {
		return nil, engine.NewValidationError("no phone numbers to check")
	}

	rows := make([]Row, 0, len(cleaned))
	for i, number := range cleaned {
		if i > 0 {
			if err := c.pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		row := Row{Number: number, Link: ChatLink(number)}
		res, err := c.checkOne(ctx, number)
		if err != nil {
			c.log.Warn("whatsapp check failed",
				zap.String("number", number),
				zap.Error(err))
			row.Err = err
			row.Result = model.WhatsAppCheckResult{
				Status: model.StatusUnknown,
				Reason: "Failed to check",
			}
		} else {
			row.Result = *res
		}
		rows = append(rows, row)

		if c.onProgress != nil {
			c.onProgress(i+1, len(cleaned))
		}
	}
	return rows, nil
}

func (c *Checker) checkOne(ctx context.Context, number string) (*model.WhatsAppCheckResult, error) {
	resp, err := c.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:  c.cfg.Gemini.FlashModel,
		Prompt: prompt.WhatsAppCheck(number),
		Schema: prompt.WhatsAppSchema(),
	})
	if err != nil {
		return nil, err
	}

	res, err := parse.WhatsAppResult(resp.Text)
	if err != nil {
		return nil, &engine.ShapeError{Err: err, RawText: resp.Text}
	}
	return res, nil
}

// ChatLink builds the wa.me link for an E.164 number: digits only, no
// plus sign.
func ChatLink(number string) string {
	return "https://wa.me/" + strings.TrimPrefix(number, "+")
}
