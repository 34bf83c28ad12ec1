package model

// KeywordRank pairs a search keyword with the business's rank for it.
// Rank is a decimal integer string or a greater-than sentinel like ">50".
type KeywordRank struct {
	Keyword string `json:"keyword"`
	Rank    string `json:"rank"`
}

// RankingResult is the output of a rank check. Rank is set for
// single-keyword checks ("3", "Not Found", ...); DiscoveredRanks is set
// for discovery mode, and for single-keyword checks that also returned
// related keywords. Image holds the generated screenshot, if any.
type RankingResult struct {
	Rank            string        `json:"rank,omitempty"`
	Image           *InlineImage  `json:"image,omitempty"`
	DiscoveredRanks []KeywordRank `json:"discovered_ranks,omitempty"`
}

// InlineImage is an image payload embedded in a model response.
type InlineImage struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
