package models

// HeaderMappingResponse contains the outcome of a header mapping run.
type HeaderMappingResponse struct {
	Mapping  map[string]string `json:"mapping"`
	Unmapped []string          `json:"unmapped"`
}

// FeedbackAcceptedResponse acknowledges a best-effort feedback write.
type FeedbackAcceptedResponse struct {
	OriginalTitle string `json:"original_title"`
	Action        string `json:"action"`
}

// Feedback action constants
const (
	FeedbackConfirm = "confirm"
	FeedbackVerify  = "verify"
	FeedbackReport  = "report"
)
