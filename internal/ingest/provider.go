package ingest

// Result summarizes what an import read and what it passed on for scoring.
type Result struct {
	SessionsReceived int `json:"sessions_received"`
	SessionsScored   int `json:"sessions_scored"`
	SessionsSkipped  int `json:"sessions_skipped"`

	SetsReceived   int `json:"sets_received"`
	WarmupsDropped int `json:"warmups_dropped"`

	Message string `json:"message,omitempty"`
}
