// Package model defines shared data structures.
package model

import "time"

// Run modes recorded in history.
const (
	ModeSweep = "sweep"
	ModeFixed = "fixed"
)

// Config defines cryptanalysis settings resolved from flags and the config file.
type Config struct {
	Alphabet  string
	Reference string
	MaxKeyLen int
	KeyLen    int
	Top       int
	Preview   int
	History   bool
}

// HistoryConfig defines filters for listing past runs.
type HistoryConfig struct {
	Mode     string
	Alphabet string
	Since    *time.Time
	Last     int
}

// Run captures one completed cryptanalysis run.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	Mode       string
	Alphabet   string
	Reference  string
	KeyLen     int
	TextLength int
}

// Candidate is a stored, ranked decryption attempt.
type Candidate struct {
	Rank      int
	Score     float64
	Key       string
	KeyLength int
	Plaintext string
}

// RunSummary pairs a run with its best candidate for listings.
type RunSummary struct {
	Run        Run
	Best       Candidate
	HasBest    bool
	Candidates int
}
