package domain

import "github.com/google/uuid"

// Category names used in the persistent key-value store.
const (
	CategoryReadData = "readData"
	CategorySettings = "settings"
)

// ReadRecord is the cumulative reading record for a single document.
// Records are keyed in the store by the document's current path; the ID is
// assigned once and survives renames.
type ReadRecord struct {
	ID             string `json:"id"`
	FilePath       string `json:"filePath"`
	Duration       int64  `json:"duration"` // milliseconds
	OpenCount      int    `json:"openCount"`
	FirstStartTime int64  `json:"firstStartTime,omitempty"` // unix milliseconds of first accrual
}

// DailyEntry is a single document's accrued time for one calendar day.
type DailyEntry struct {
	ID       string `json:"id"`
	Duration int64  `json:"duration"` // milliseconds accrued that day only
}

// DailySnapshot is the content of one per-date data file.
type DailySnapshot struct {
	DailyReadData map[string]DailyEntry `json:"dailyReadData"`
}

// NewDocumentID returns a fresh identifier for a document seen for the
// first time. Identifiers are never reused for a different document.
func NewDocumentID() string {
	return uuid.NewString()
}
