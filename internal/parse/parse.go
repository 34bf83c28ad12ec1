// Package parse turns raw model output into domain types. The model is
// prompted to return bare JSON but routinely wraps it in prose or code
// fences, so every decoder here isolates the payload before decoding and
// coerces loosely typed numeric fields.
package parse

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadlens/leadlens-cli/internal/model"
)

// ErrNoArray is returned when the response contains no JSON array at all.
// Callers treat it differently from a decode failure: an empty page and a
// garbled page are not the same thing.
var ErrNoArray = eris.New("parse: no JSON array in response")

// ErrNoObject is the object-payload counterpart of ErrNoArray.
var ErrNoObject = eris.New("parse: no JSON object in response")

// rawBusiness mirrors a listing record as the model emits it. Rating and
// review count arrive as numbers, numeric strings, or garbage depending
// on the model's mood, so they decode as any and get coerced after.
type rawBusiness struct {
	Name                  string   `json:"name"`
	Address               string   `json:"address"`
	Phone                 string   `json:"phone"`
	Description           string   `json:"description"`
	Rating                any      `json:"rating"`
	ReviewCount           any      `json:"reviewCount"`
	Category              string   `json:"category"`
	Website               string   `json:"website"`
	RecentReviewReplyDate string   `json:"recentReviewReplyDate"`
	OwnerName             string   `json:"ownerName"`
	OwnerSocialMedia      []string `json:"ownerSocialMedia"`
	CompanySocialMedia    []string `json:"companySocialMedia"`
}

func (r rawBusiness) toBusiness() model.Business {
	b := model.Business{
		Name:                  r.Name,
		Address:               r.Address,
		Phone:                 NormalizePhone(r.Phone),
		Description:           r.Description,
		Category:              r.Category,
		Website:               r.Website,
		RecentReviewReplyDate: r.RecentReviewReplyDate,
		OwnerName:             r.OwnerName,
		OwnerSocialMedia:      r.OwnerSocialMedia,
		CompanySocialMedia:    r.CompanySocialMedia,
	}
	if f, ok := toFloat64(r.Rating); ok {
		b.Rating = &f
	}
	if n, ok := toInt(r.ReviewCount); ok {
		b.ReviewCount = &n
	}
	return b
}

// Businesses decodes a listing response. The payload is whatever sits
// between the first '[' and the last ']'; anything around it is ignored.
func Businesses(text string) ([]model.Business, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, ErrNoArray
	}

	var raw []rawBusiness
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, eris.Wrap(err, "parse: decode business array")
	}

	out := make([]model.Business, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toBusiness())
	}
	return out, nil
}

// Business decodes a single deep-dive record. The payload is whatever
// sits between the first '{' and the last '}'.
func Business(text string) (*model.Business, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, ErrNoObject
	}

	var raw rawBusiness
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, eris.Wrap(err, "parse: decode business object")
	}

	b := raw.toBusiness()
	return &b, nil
}

// NormalizePhone strips spaces, parentheses, and hyphens so numbers
// compare and dial as E.164.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '-':
			return -1
		}
		return r
	}, phone)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	f, ok := toFloat64(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}
