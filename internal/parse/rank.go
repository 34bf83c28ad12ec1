package parse

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadlens/leadlens-cli/internal/model"
)

// rankSeparator splits a discovered-keyword line into keyword and rank.
const rankSeparator = " :: "

// RankReport decodes the plain-text rank-check output. The first
// non-empty line is the primary rank; each later line holding
// "keyword :: rank" contributes a discovered keyword. Lines that do not
// match the shape are dropped without error.
func RankReport(text string) (rank string, ranks []model.KeywordRank) {
	lines := strings.Split(text, "\n")

	i := 0
	for ; i < len(lines); i++ {
		if line := strings.TrimSpace(lines[i]); line != "" {
			rank = line
			i++
			break
		}
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		k, r, found := strings.Cut(line, rankSeparator)
		if !found {
			continue
		}
		k, r = strings.TrimSpace(k), strings.TrimSpace(r)
		if k == "" || r == "" {
			continue
		}
		ranks = append(ranks, model.KeywordRank{Keyword: k, Rank: r})
	}
	return rank, ranks
}

// KeywordRanks decodes the JSON array returned by keyword discovery.
func KeywordRanks(text string) ([]model.KeywordRank, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, ErrNoArray
	}

	var ranks []model.KeywordRank
	if err := json.Unmarshal([]byte(text[start:end+1]), &ranks); err != nil {
		return nil, eris.Wrap(err, "parse: decode keyword ranks")
	}
	return ranks, nil
}
