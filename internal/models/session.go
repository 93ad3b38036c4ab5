package models

import "time"

// SessionTotals aggregates counters for the active session. Monotonically
// updated from server responses and local answer classification; read-only
// outside the session controller.
type SessionTotals struct {
	Processed int
	Correct   int
	Incorrect int
	Vague     int
	Total     int
	Score     int
}

// AnswerRecord is one entry of the append-only answer history kept for the
// "previous card" panel and the review journal.
type AnswerRecord struct {
	SessionID   string    `db:"session_id"`
	ItemID      int64     `db:"item_id"`
	Front       string    `db:"front"`
	Back        string    `db:"back"`
	Label       string    `db:"label"`
	ScoreChange int       `db:"score_change"`
	DurationMS  int64     `db:"duration_ms"`
	AnsweredAt  time.Time `db:"answered_at"`
}

// AnswerClass is the local classification of a rating label.
type AnswerClass int

const (
	AnswerVague AnswerClass = iota
	AnswerCorrect
	AnswerIncorrect
)
