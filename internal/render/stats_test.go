package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

func TestStatsPanel(t *testing.T) {
	t.Parallel()

	reviewed := models.ItemStats{
		TotalReviews:    8,
		CorrectCount:    6,
		IncorrectCount:  1,
		VagueCount:      1,
		CorrectStreak:   3,
		IntervalMinutes: 1500,
		DueAt:           "2026-09-02T08:00:00Z",
		LastReviewedAt:  "2026-09-01T08:00:00Z",
	}

	tests := []struct {
		name     string
		stats    models.ItemStats
		density  Density
		contains []string
	}{
		{
			name:     "never reviewed renders no-data fragment",
			stats:    models.ItemStats{},
			density:  DensityFull,
			contains: []string{"stats-empty", "Chưa có dữ liệu"},
		},
		{
			name:    "full panel",
			stats:   reviewed,
			density: DensityFull,
			contains: []string{
				"stats-panel",
				"<b>8</b>",
				"(75%)",
				"1 ngày 1 giờ",
				"08:00 02/09/2026",
			},
		},
		{
			name:     "compact panel",
			stats:    reviewed,
			density:  DensityCompact,
			contains: []string{"stats-compact", "75%", "1 ngày 1 giờ"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StatsPanel(tt.stats, tt.density)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestStatsPanel_Deterministic(t *testing.T) {
	t.Parallel()

	stats := models.ItemStats{TotalReviews: 3, CorrectCount: 2, IntervalMinutes: 60}
	assert.Equal(t, StatsPanel(stats, DensityFull), StatsPanel(stats, DensityFull))
}

func TestSessionSummary(t *testing.T) {
	t.Parallel()

	totals := models.SessionTotals{Processed: 4, Correct: 2, Incorrect: 1, Vague: 1, Total: 10, Score: 15}
	got := SessionSummary(totals)

	assert.Contains(t, got, "4/10")
	assert.Contains(t, got, "⭐ 15")
}
