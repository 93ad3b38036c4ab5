package models

// Item is one learning unit (flashcard or quiz question) as delivered by the
// server for the active session. Immutable once received, except for
// CardCategory which is derived locally when the item enters the buffer.
type Item struct {
	ItemID       int64       `json:"item_id"`
	Content      ItemContent `json:"content"`
	InitialStats ItemStats   `json:"initial_stats"`
	CardCategory string      `json:"-"`
}

type ItemContent struct {
	Front          string `json:"front"`
	Back           string `json:"back"`
	ImageURL       string `json:"image_url,omitempty"`
	FrontAudioURL  string `json:"front_audio_url,omitempty"`
	BackAudioURL   string `json:"back_audio_url,omitempty"`
	FrontAudioText string `json:"front_audio_content,omitempty"`
	BackAudioText  string `json:"back_audio_content,omitempty"`
}

// ItemStats is the server-computed review snapshot attached to an item at
// fetch time. All fields may be zero for a card that was never reviewed.
type ItemStats struct {
	TotalReviews    int    `json:"total_reviews"`
	CorrectCount    int    `json:"correct_count"`
	IncorrectCount  int    `json:"incorrect_count"`
	VagueCount      int    `json:"vague_count"`
	CorrectStreak   int    `json:"correct_streak"`
	IntervalMinutes int    `json:"interval_minutes"`
	DueAt           string `json:"due_at,omitempty"`
	LastReviewedAt  string `json:"last_reviewed_at,omitempty"`
	ProgressStatus  string `json:"progress_status,omitempty"`
}
