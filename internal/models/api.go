package models

// BatchResult is the tagged outcome of a batch fetch. Exactly one of the
// variants applies: a successful page of items, or the server's explicit
// exhaustion signal. Transport failures are reported as a separate error by
// the client, never as a BatchResult.
type BatchResult struct {
	Items          []Item
	TotalInSession int
	SessionPoints  int
	ContainerName  string
	Exhausted      bool
	Message        string
}

type BatchResponse struct {
	Items               []Item `json:"items"`
	TotalItemsInSession int    `json:"total_items_in_session"`
	SessionPoints       int    `json:"session_points,omitempty"`
	ContainerName       string `json:"container_name,omitempty"`
}

type AnswerSubmission struct {
	ItemID     int64  `json:"item_id"`
	UserAnswer string `json:"user_answer"`
	DurationMS int64  `json:"duration_ms"`
}

type SubmitResult struct {
	ScoreChange       int       `json:"score_change"`
	UpdatedTotalScore int       `json:"updated_total_score"`
	Statistics        ItemStats `json:"statistics"`
	AnswerResult      string    `json:"answer_result"`
	NewProgressStatus string    `json:"new_progress_status"`
}

type TTSRequest struct {
	ItemID        int64  `json:"item_id"`
	Side          string `json:"side"`
	ContentToRead string `json:"content_to_read"`
}

type TTSResponse struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audio_url,omitempty"`
	Message  string `json:"message,omitempty"`
}

// VisualSettings are the per-user display preferences synced best-effort to
// the server and mirrored in the local preference cache.
type VisualSettings struct {
	Autoplay  bool `json:"autoplay"`
	ShowImage bool `json:"show_image"`
	ShowStats bool `json:"show_stats"`
}

type SettingsRequest struct {
	VisualSettings VisualSettings `json:"visual_settings"`
}
