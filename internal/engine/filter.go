package engine

import "github.com/leadlens/leadlens-cli/internal/model"

// Filter is the client-side predicate over an aggregated business set.
// Nil floors are skipped. A business missing the field a floor applies to
// is excluded, never treated as satisfying the floor. Not applied to
// deep-dive results.
type Filter struct {
	MinRating  *float64
	MinReviews *int
}

// Apply returns the businesses passing every set floor. The input slice
// is never mutated.
func (f Filter) Apply(in []model.Business) []model.Business {
	if f.MinRating == nil && f.MinReviews == nil {
		return in
	}

	out := make([]model.Business, 0, len(in))
	for _, b := range in {
		if f.MinRating != nil && (b.Rating == nil || *b.Rating < *f.MinRating) {
			continue
		}
		if f.MinReviews != nil && (b.ReviewCount == nil || *b.ReviewCount < *f.MinReviews) {
			continue
		}
		out = append(out, b)
	}
	return out
}
