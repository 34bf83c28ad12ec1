package model

// BulkProgress is the transient state of a multi-location sweep. It is
// created at sweep start, republished after every per-location call, and
// discarded when the sweep ends.
type BulkProgress struct {
	Current    int    `json:"current"` // 1-based location index
	Total      int    `json:"total"`
	CityName   string `json:"city_name"`
	TotalFound int    `json:"total_found"`
}
