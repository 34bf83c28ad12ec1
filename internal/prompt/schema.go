package prompt

import "github.com/leadlens/leadlens-cli/pkg/gemini"

// DeepDiveSchema constrains the deep-dive call to a single business
// record.
func DeepDiveSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"name":        {Type: gemini.TypeString, Description: "The official business name."},
			"category":    {Type: gemini.TypeString, Description: "The primary business category."},
			"address":     {Type: gemini.TypeString, Description: "The full physical address."},
			"phone":       {Type: gemini.TypeString, Description: "The main contact number in E.164 format."},
			"website":     {Type: gemini.TypeString, Description: "The official website URL, or an empty string."},
			"reviewCount": {Type: gemini.TypeNumber, Description: "The total count of Google Maps reviews."},
			"recentReviewReplyDate": {
				Type:        gemini.TypeString,
				Description: `The date of the most recent owner reply as YYYY-MM-DD, or "` + SentinelNoRecentReplies + `".`,
			},
			"ownerName": {
				Type:        gemini.TypeString,
				Description: `The owner, CEO, or founder name, or "` + SentinelNotPublic + `".`,
			},
			"ownerSocialMedia": {
				Type:        gemini.TypeArray,
				Description: "Full URLs of the owner's public social media profiles.",
				Items:       &gemini.Schema{Type: gemini.TypeString},
			},
			"companySocialMedia": {
				Type:        gemini.TypeArray,
				Description: "Full URLs of all official company social media profiles.",
				Items:       &gemini.Schema{Type: gemini.TypeString},
			},
			"description": {Type: gemini.TypeString, Description: "A one-paragraph summary of the business."},
		},
		Required: []string{"name", "category", "address", "phone", "website", "description"},
	}
}

// WhatsAppSchema constrains the messaging-status call to a status plus a
// short justification.
func WhatsAppSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"status": {
				Type: gemini.TypeString,
				Enum: []string{"Likely Active", "Likely Inactive", "Unknown"},
			},
			"reason": {
				Type:        gemini.TypeString,
				Description: "A brief, one-sentence justification for the status.",
			},
		},
		Required: []string{"status", "reason"},
	}
}

// KeywordRankSchema constrains the keyword-discovery call to an array of
// keyword/rank pairs. Ranks stay strings so the model can express open
// intervals such as ">200".
func KeywordRankSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeArray,
		Items: &gemini.Schema{
			Type: gemini.TypeObject,
			Properties: map[string]*gemini.Schema{
				"keyword": {Type: gemini.TypeString, Description: "The search term."},
				"rank":    {Type: gemini.TypeString, Description: `The position as a string, e.g. "5" or ">200".`},
			},
			Required: []string{"keyword", "rank"},
		},
	}
}
