// Package engine orchestrates the gateway calls behind each user action:
// a single listing page, a page advance on a frozen query, a whole-country
// sweep, or a single-business deep dive. All calls run strictly
// sequentially; the only suspension points are the gateway calls and the
// pacer waits between them.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leadlens/leadlens-cli/internal/config"
	"github.com/leadlens/leadlens-cli/internal/model"
	"github.com/leadlens/leadlens-cli/internal/parse"
	"github.com/leadlens/leadlens-cli/internal/prompt"
	"github.com/leadlens/leadlens-cli/internal/registry"
	"github.com/leadlens/leadlens-cli/pkg/gemini"
)

// CategoryOther is the synthetic category value that defers to the
// caller-supplied custom category text.
const CategoryOther = "Other"

// Mode selects how a listing search is scoped.
type Mode string

const (
	// ModeSpecific searches a concrete city in a country.
	ModeSpecific Mode = "specific"
	// ModeNearMe searches around a latitude/longitude fix.
	ModeNearMe Mode = "near-me"
)

// ScrapeParams are the inputs to a single-page listing search.
type ScrapeParams struct {
	Category       string
	CustomCategory string // used when Category is CategoryOther
	Mode           Mode
	Country        string // ISO code, ModeSpecific only
	City           string // ModeSpecific only
	Location       *model.UserLocation
	RadiusMiles    float64
}

// SweepParams are the inputs to a whole-country sweep.
type SweepParams struct {
	Category       string
	CustomCategory string
	Country        string
}

// DeepDiveParams are the inputs to a single-business lookup.
type DeepDiveParams struct {
	BusinessName string
	Country      string
	City         string
}

// Session holds the state of one listing search. Query is frozen at the
// first page and reused verbatim for later pages; page navigation never
// re-derives it from current inputs.
type Session struct {
	ID       string
	Query    string
	Page     int
	Location *gemini.LatLng // bias carried across page advances
	Result   *model.ScrapeResult
	HasMore  bool
}

// Engine drives the gateway. One Engine serves many actions; each action
// owns its accumulator exclusively for its duration.
type Engine struct {
	client     gemini.Client
	cfg        *config.Config
	pacer      Pacer
	log        *zap.Logger
	onResult   func(*model.ScrapeResult)
	onProgress func(model.BulkProgress)
}

// Option configures the engine.
type Option func(*Engine)

// WithPacer overrides the inter-call pacing policy.
func WithPacer(p Pacer) Option {
	return func(e *Engine) { e.pacer = p }
}

// WithLogger overrides the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// OnResult registers an observer for result snapshots. During a sweep it
// fires after every city with the growing accumulated result.
func OnResult(fn func(*model.ScrapeResult)) Option {
	return func(e *Engine) { e.onResult = fn }
}

// OnProgress registers an observer for sweep progress updates.
func OnProgress(fn func(model.BulkProgress)) Option {
	return func(e *Engine) { e.onProgress = fn }
}

// New creates an engine over the given gateway client.
func New(client gemini.Client, cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		client: client,
		cfg:    cfg,
		pacer:  NewPacer(time.Duration(cfg.Sweep.DelayMillis) * time.Millisecond),
		log:    zap.L(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Scrape runs a page-1 listing search and opens a session for later page
// advances. HasMore treats a full page as a hint that more data may
// exist; it is a heuristic, not a guarantee.
func (e *Engine) Scrape(ctx context.Context, p ScrapeParams) (*Session, error) {
	category, err := resolveCategory(p.Category, p.CustomCategory)
	if err != nil {
		return nil, err
	}

	var (
		query string
		bias  *gemini.LatLng
	)
	switch p.Mode {
	case ModeNearMe:
		if p.Location == nil {
			return nil, NewValidationError("a location fix is required for a near-me search")
		}
		if p.RadiusMiles <= 0 {
			return nil, NewValidationError("radius must be a positive number of miles")
		}
		query = fmt.Sprintf("%s within a %g mile radius of my current location", category, p.RadiusMiles)
		bias = &gemini.LatLng{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude}
	case ModeSpecific:
		if p.City == "" || p.City == registry.AllCities {
			return nil, NewValidationError("a concrete city is required; use a sweep for all cities")
		}
		query, err = e.specificQuery(category, p.City, p.Country)
		if err != nil {
			return nil, err
		}
	default:
		return nil, NewValidationError("unknown search mode %q", p.Mode)
	}

	res, err := e.listingCall(ctx, query, 1, bias)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.NewString(),
		Query:    query,
		Page:     1,
		Location: bias,
		Result:   res,
		HasMore:  len(res.Businesses) >= e.cfg.Scrape.PageSize,
	}
	e.log.Info("scrape complete",
		zap.String("session", s.ID),
		zap.Int("businesses", len(res.Businesses)),
		zap.Bool("has_more", s.HasMore))
	e.publish(res)
	return s, nil
}

// Advance re-issues the session's frozen query for another page. The new
// page's results replace the session's set; pages never accumulate.
func (e *Engine) Advance(ctx context.Context, s *Session, page int) error {
	if page < 1 {
		return NewValidationError("page must be >= 1, got %d", page)
	}

	res, err := e.listingCall(ctx, s.Query, page, s.Location)
	if err != nil {
		return err
	}

	s.Page = page
	s.Result = res
	s.HasMore = len(res.Businesses) >= e.cfg.Scrape.PageSize
	e.log.Info("page advanced",
		zap.String("session", s.ID),
		zap.Int("page", page),
		zap.Int("businesses", len(res.Businesses)))
	e.publish(res)
	return nil
}

// Sweep runs a page-1 listing search per city of the country, in registry
// order. A failed city is logged and skipped; the sweep always reaches
// the last city, even at 100% failure, and ends normally with whatever
// accumulated. Businesses concatenate without cross-city dedup; sources
// dedupe by URI within their kind.
func (e *Engine) Sweep(ctx context.Context, p SweepParams) (*model.ScrapeResult, error) {
	category, err := resolveCategory(p.Category, p.CustomCategory)
	if err != nil {
		return nil, err
	}
	reg, err := registry.Load()
	if err != nil {
		return nil, err
	}
	cities := reg.CitiesFor(p.Country)
	if len(cities) == 0 {
		return nil, NewValidationError("unknown country %q", p.Country)
	}

	acc, err := e.sweepCities(ctx, category, reg.CountryName(p.Country), cities)
	if err != nil {
		return nil, err
	}

	e.log.Info("sweep complete",
		zap.String("country", p.Country),
		zap.Int("cities", len(cities)),
		zap.Int("businesses", len(acc.Businesses)))
	return acc, nil
}

// sweepCities runs the per-city loop. The accumulated result grows after
// every successful city and is published either way.
func (e *Engine) sweepCities(ctx context.Context, category, countryName string, cities []string) (*model.ScrapeResult, error) {
	acc := &model.ScrapeResult{}

	for i, city := range cities {
		if i > 0 {
			if err := e.pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		query := fmt.Sprintf("%s in %s, %s", category, city, countryName)
		res, err := e.listingCall(ctx, query, 1, nil)
		if err != nil {
			// One city's failure never aborts the sweep.
			e.log.Warn("sweep city failed",
				zap.String("city", city),
				zap.Error(err))
		} else {
			acc.Businesses = append(acc.Businesses, res.Businesses...)
			acc.Sources = mergeSources(acc.Sources, res.Sources)
		}

		e.publish(acc)
		e.progress(model.BulkProgress{
			Current:    i + 1,
			Total:      len(cities),
			CityName:   city,
			TotalFound: len(acc.Businesses),
		})
	}

	return acc, nil
}

// DeepDive runs one schema-constrained call for a single business. The
// result carries exactly zero or one business.
func (e *Engine) DeepDive(ctx context.Context, p DeepDiveParams) (*model.ScrapeResult, error) {
	if p.BusinessName == "" {
		return nil, NewValidationError("business name is required")
	}
	if p.City == "" || p.City == registry.AllCities {
		return nil, NewValidationError("a concrete city is required for a deep dive")
	}
	reg, err := registry.Load()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s, %s, %s", p.BusinessName, p.City, reg.CountryName(p.Country))
	resp, err := e.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:          e.cfg.Gemini.ProModel,
		Prompt:         prompt.DeepDive(query),
		Schema:         prompt.DeepDiveSchema(),
		ThinkingBudget: e.cfg.Gemini.ThinkingBudget,
	})
	if err != nil {
		return nil, err
	}

	res := &model.ScrapeResult{Sources: fromChunks(resp.Sources)}
	b, err := parse.Business(resp.Text)
	switch {
	case err == nil:
		res.Businesses = []model.Business{*b}
	case errors.Is(err, parse.ErrNoObject):
		res.Text = resp.Text
	default:
		return nil, &ShapeError{Err: err, RawText: resp.Text}
	}

	e.publish(res)
	return res, nil
}

// listingCall issues one free-text listing request and parses the reply.
// A reply with no JSON array at all is not an error: the raw text is
// surfaced as the result's display text with zero businesses.
func (e *Engine) listingCall(ctx context.Context, query string, page int, bias *gemini.LatLng) (*model.ScrapeResult, error) {
	resp, err := e.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:         e.cfg.Gemini.FlashModel,
		Prompt:        prompt.Listing(query, e.cfg.Scrape.PageSize, page),
		MapsGrounding: true,
		LocationBias:  bias,
	})
	if err != nil {
		return nil, err
	}

	res := &model.ScrapeResult{Sources: fromChunks(resp.Sources)}
	businesses, err := parse.Businesses(resp.Text)
	switch {
	case errors.Is(err, parse.ErrNoArray):
		res.Text = resp.Text
	case err != nil:
		return nil, &ShapeError{Err: err, RawText: resp.Text}
	case len(businesses) == 0:
		res.Text = resp.Text
	default:
		res.Businesses = businesses
	}
	return res, nil
}

func (e *Engine) specificQuery(category, city, country string) (string, error) {
	reg, err := registry.Load()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s in %s, %s", category, city, reg.CountryName(country)), nil
}

func resolveCategory(category, custom string) (string, error) {
	if category == CategoryOther {
		if custom == "" {
			return "", NewValidationError("a custom category is required when category is %q", CategoryOther)
		}
		return custom, nil
	}
	if category == "" {
		return "", NewValidationError("category is required")
	}
	return category, nil
}

func (e *Engine) publish(res *model.ScrapeResult) {
	if e.onResult != nil {
		e.onResult(res)
	}
}

func (e *Engine) progress(p model.BulkProgress) {
	if e.onProgress != nil {
		e.onProgress(p)
	}
}

// mergeSources folds new sources into acc, dropping any whose URI already
// appears within the same kind. Idempotent.
func mergeSources(acc, more []model.Source) []model.Source {
	for _, s := range more {
		dup := false
		for _, have := range acc {
			if have.SameRef(s) {
				dup = true
				break
			}
		}
		if !dup {
			acc = append(acc, s)
		}
	}
	return acc
}

func fromChunks(chunks []gemini.GroundingChunk) []model.Source {
	if len(chunks) == 0 {
		return nil
	}
	out := make([]model.Source, 0, len(chunks))
	for _, c := range chunks {
		var s model.Source
		if c.Web != nil {
			s.Web = &model.WebRef{URI: c.Web.URI, Title: c.Web.Title}
		}
		if c.Maps != nil {
			s.Maps = &model.MapsRef{URI: c.Maps.URI, Title: c.Maps.Title}
		}
		if s.Web != nil || s.Maps != nil {
			out = append(out, s)
		}
	}
	return out
}
