package repository

import (
	"context"
	"fmt"

	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

// JournalR is the append-only review journal: every answered card is
// recorded once. The session controller treats it as a best-effort sink and
// never reads it back for correctness.
type JournalR struct {
	db QueryI
}

func NewJournalRepository(db QueryI) *JournalR {
	return &JournalR{db: db}
}

func (j *JournalR) RecordAnswer(ctx context.Context, rec models.AnswerRecord) error {
	query := `
        INSERT INTO review_journal (session_id, item_id, front, back, label, score_change, duration_ms, answered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	_, err := j.db.ExecContext(ctx, query,
		rec.SessionID, rec.ItemID, rec.Front, rec.Back, rec.Label, rec.ScoreChange, rec.DurationMS, rec.AnsweredAt)
	if err != nil {
		return err
	}

	return nil
}

// History returns the most recent journal entries for a session, newest
// first.
func (j *JournalR) History(ctx context.Context, sessionID string, limit int) ([]models.AnswerRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT session_id, item_id, front, back, label, score_change, duration_ms, answered_at
		FROM review_journal
		WHERE session_id = $1
		ORDER BY answered_at DESC
		LIMIT $2
	`

	records := make([]models.AnswerRecord, 0, limit)
	err := j.db.SelectContext(ctx, &records, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal for session %s: %w", sessionID, err)
	}

	return records, nil
}

// SessionScore sums the recorded score changes of a session.
func (j *JournalR) SessionScore(ctx context.Context, sessionID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(score_change), 0)
		FROM review_journal
		WHERE session_id = $1
	`

	var score int
	err := j.db.GetContext(ctx, &score, query, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum score for session %s: %w", sessionID, err)
	}

	return score, nil
}
