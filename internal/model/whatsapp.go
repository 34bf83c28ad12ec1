package model

// WhatsAppStatus is the three-valued outcome of a messaging-status check.
type WhatsAppStatus string

const (
	StatusLikelyActive   WhatsAppStatus = "Likely Active"
	StatusLikelyInactive WhatsAppStatus = "Likely Inactive"
	StatusUnknown        WhatsAppStatus = "Unknown"
)

// WhatsAppCheckResult is the verdict for one phone number. Never cached;
// recomputed on every check.
type WhatsAppCheckResult struct {
	Status WhatsAppStatus `json:"status"`
	Reason string         `json:"reason"`
}
