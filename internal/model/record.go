// Package model defines the core data types shared across the standardization pipeline.
package model

import "time"

// Unknown is the sentinel label returned when no confident match exists.
// It is a real output value, not an error state: every input name maps to
// either a known standard label or Unknown.
const Unknown = "UNKNOWN"

// Record pairs an input firm name with the standard label it resolved to.
// Records are immutable once created.
type Record struct {
	Input        string `json:"input" csv:"Input Firm Name"`
	Standardized string `json:"standardized" csv:"Standardized Firm Name"`
}

// Group collects the distinct input spellings that resolved to one label.
// Variants preserve first-seen order and contain no exact-string duplicates.
type Group struct {
	Label    string   `json:"label"`
	Variants []string `json:"variants"`
}

// RunStatus tracks the lifecycle of a batch run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one batch standardization run persisted in the store.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Column    string    `json:"column"`
	Status    RunStatus `json:"status"`
	Total     int       `json:"total"`
	Matched   int       `json:"matched"`
	Unmatched int       `json:"unmatched"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary aggregates the outcome counts of a completed run.
type Summary struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}

// Summarize counts matched vs unmatched records.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Standardized == Unknown {
			s.Unmatched++
		} else {
			s.Matched++
		}
	}
	return s
}
