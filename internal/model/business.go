package model

// Business is one directory entry returned by a listing or deep-dive call.
// Rating and ReviewCount are nil when the model could not determine them.
// The deep-dive-only fields stay empty for fast-mode listings.
type Business struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`

	Category              string   `json:"category,omitempty"`
	Website               string   `json:"website,omitempty"`
	RecentReviewReplyDate string   `json:"recentReviewReplyDate,omitempty"`
	OwnerName             string   `json:"ownerName,omitempty"`
	OwnerSocialMedia      []string `json:"ownerSocialMedia,omitempty"`
	CompanySocialMedia    []string `json:"companySocialMedia,omitempty"`
}

// WebRef is a web citation attached to a grounded response.
type WebRef struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MapsRef is a maps citation attached to a grounded response.
type MapsRef struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Source is a citation returned alongside a listing call. Exactly one of
// Web or Maps is set. Two sources are duplicates iff their URIs match
// within the same kind; web and maps references are never compared.
type Source struct {
	Web  *WebRef  `json:"web,omitempty"`
	Maps *MapsRef `json:"maps,omitempty"`
}

// SameRef reports whether s and other cite the same reference.
func (s Source) SameRef(other Source) bool {
	if s.Web != nil && other.Web != nil {
		return s.Web.URI == other.Web.URI
	}
	if s.Maps != nil && other.Maps != nil {
		return s.Maps.URI == other.Maps.URI
	}
	return false
}

// ScrapeResult is the unit returned from one logical user action.
// Text is populated only when parsing failed or nothing was found, to
// surface the raw model answer; when Businesses is non-empty, Text is "".
type ScrapeResult struct {
	Text       string     `json:"text"`
	Sources    []Source   `json:"sources"`
	Businesses []Business `json:"businesses,omitempty"`
}

// UserLocation is a latitude/longitude pair used to bias near-me searches.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
