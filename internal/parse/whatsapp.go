package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadlens/leadlens-cli/internal/model"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// CleanNumber strips the formatting characters people paste along with
// phone numbers. Validation runs on the cleaned form.
func CleanNumber(number string) string {
	return NormalizePhone(strings.TrimSpace(number))
}

// ValidE164 reports whether the number is strict E.164: a leading plus,
// a non-zero first digit, at most fifteen digits.
func ValidE164(number string) bool {
	return e164Pattern.MatchString(number)
}

// WhatsAppResult decodes a messaging-status response. A status outside
// the known set degrades to unknown rather than failing the row.
func WhatsAppResult(text string) (*model.WhatsAppCheckResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, ErrNoObject
	}

	var raw struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, eris.Wrap(err, "parse: decode whatsapp result")
	}

	res := &model.WhatsAppCheckResult{Reason: raw.Reason}
	switch model.WhatsAppStatus(raw.Status) {
	case model.StatusLikelyActive, model.StatusLikelyInactive, model.StatusUnknown:
		res.Status = model.WhatsAppStatus(raw.Status)
	default:
		res.Status = model.StatusUnknown
	}
	return res, nil
}
