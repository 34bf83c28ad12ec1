// Package rank checks a business's local-search ranking: a single
// keyword check with a generated results screenshot, or an exhaustive
// discovery of every keyword the business ranks for.
package rank

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/config"
	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/model"
	"github.com/leadlens/leadlens-cli/internal/parse"
	"github.com/leadlens/leadlens-cli/internal/prompt"
	"github.com/leadlens/leadlens-cli/internal/registry"
	"github.com/leadlens/leadlens-cli/pkg/gemini"
)

// Params are the inputs to a rank check. An empty Keyword selects
// discovery mode.
type Params struct {
	BusinessName string
	Identifier   string // website or phone, disambiguates; may be empty
	Keyword      string
	Country      string
	City         string
}

// Checker drives rank checks.
type Checker struct {
	client gemini.Client
	cfg    *config.Config
	log    *zap.Logger
}

// New creates a checker over the given gateway client.
func New(client gemini.Client, cfg *config.Config) *Checker {
	return &Checker{client: client, cfg: cfg, log: zap.L()}
}

// Check runs one rank check. Keyword mode issues a free-text call on the
// image model and tolerates partial output: it fails only when the rank,
// the screenshot, and the discovered keywords are ALL absent. Discovery
// mode issues a schema-constrained call and fails on any decode error.
func (c *Checker) Check(ctx context.Context, p Params) (*model.RankingResult, error) {
	if p.BusinessName == "" {
		return nil, engine.NewValidationError("business name is required")
	}
	if p.City == "" || p.City == registry.AllCities {
		return nil, engine.NewValidationError("a concrete city is required for a rank check")
	}
	reg, err := registry.Load()
	if err != nil {
		return nil, err
	}
	location := fmt.Sprintf("%s, %s", p.City, reg.CountryName(p.Country))

	if p.Keyword == "" {
		return c.discover(ctx, p, location)
	}
	return c.checkKeyword(ctx, p, location)
}

func (c *Checker) checkKeyword(ctx context.Context, p Params, location string) (*model.RankingResult, error) {
	resp, err := c.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:         c.cfg.Gemini.ImageModel,
		Prompt:        prompt.RankForKeyword(p.BusinessName, p.Identifier, p.Keyword, location),
		ImageResponse: true,
	})
	if err != nil {
		return nil, err
	}

	rank, ranks := parse.RankReport(resp.Text)
	res := &model.RankingResult{Rank: rank, DiscoveredRanks: ranks}
	if resp.Image != nil {
		res.Image = &model.InlineImage{MIMEType: resp.Image.MIMEType, Data: resp.Image.Data}
	}

	if res.Rank == "" && res.Image == nil && len(res.DiscoveredRanks) == 0 {
		return nil, &engine.ShapeError{
			Err:     eris.New("rank: response held no rank, screenshot, or keywords"),
			RawText: resp.Text,
		}
	}

	c.log.Info("rank check complete",
		zap.String("keyword", p.Keyword),
		zap.String("rank", res.Rank),
		zap.Int("related", len(res.DiscoveredRanks)),
		zap.Bool("screenshot", res.Image != nil))
	return res, nil
}

func (c *Checker) discover(ctx context.Context, p Params, location string) (*model.RankingResult, error) {
	resp, err := c.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:          c.cfg.Gemini.ProModel,
		Prompt:         prompt.DiscoverKeywords(p.BusinessName, p.Identifier, location),
		Schema:         prompt.KeywordRankSchema(),
		ThinkingBudget: c.cfg.Gemini.ThinkingBudget,
	})
	if err != nil {
		return nil, err
	}

	ranks, err := parse.KeywordRanks(resp.Text)
	if err != nil {
		return nil, &engine.ShapeError{Err: err, RawText: resp.Text}
	}

	c.log.Info("keyword discovery complete",
		zap.String("business", p.BusinessName),
		zap.Int("keywords", len(ranks)))
	return &model.RankingResult{DiscoveredRanks: ranks}, nil
}
