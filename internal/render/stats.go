package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

// Density selects how much of an item's statistics panel is rendered.
type Density int

const (
	DensityFull Density = iota
	DensityCompact
)

// StatsPanel builds an HTML fragment summarizing an item's review statistics.
// Deterministic for identical input; missing or empty stats render an
// explicit "no data" fragment instead of failing.
func StatsPanel(stats models.ItemStats, density Density) string {
	if stats.TotalReviews == 0 {
		return `<div class="stats-empty">Chưa có dữ liệu</div>`
	}

	if density == DensityCompact {
		return compactPanel(stats)
	}
	return fullPanel(stats)
}

func fullPanel(stats models.ItemStats) string {
	var sb strings.Builder

	sb.WriteString(`<div class="stats-panel">`)

	sb.WriteString(`<div class="stats-row">📊 Đã ôn: <b>`)
	sb.WriteString(strconv.Itoa(stats.TotalReviews))
	sb.WriteString(`</b> lần</div>`)

	sb.WriteString(`<div class="stats-row">✅ Đúng: <b>`)
	sb.WriteString(strconv.Itoa(stats.CorrectCount))
	sb.WriteString(fmt.Sprintf(`</b> (%d%%)</div>`, percent(stats.CorrectCount, stats.TotalReviews)))

	sb.WriteString(`<div class="stats-row">❌ Sai: <b>`)
	sb.WriteString(strconv.Itoa(stats.IncorrectCount))
	sb.WriteString(`</b></div>`)

	sb.WriteString(`<div class="stats-row">🤔 Mơ hồ: <b>`)
	sb.WriteString(strconv.Itoa(stats.VagueCount))
	sb.WriteString(`</b></div>`)

	if stats.CorrectStreak > 0 {
		sb.WriteString(`<div class="stats-row">🔥 Chuỗi đúng: <b>`)
		sb.WriteString(strconv.Itoa(stats.CorrectStreak))
		sb.WriteString(`</b></div>`)
	}

	sb.WriteString(`<div class="stats-row">⏱ Khoảng ôn: `)
	sb.WriteString(FormatMinutesAsDuration(stats.IntervalMinutes))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="stats-row">📅 Đến hạn: `)
	sb.WriteString(FormatTimestamp(stats.DueAt))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="stats-row">🕘 Lần cuối: `)
	sb.WriteString(FormatTimestamp(stats.LastReviewedAt))
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)

	return sb.String()
}

func compactPanel(stats models.ItemStats) string {
	var sb strings.Builder

	sb.WriteString(`<div class="stats-compact">`)
	sb.WriteString(fmt.Sprintf("📊 %d · ✅ %d%% · 🔥 %d · ⏱ %s",
		stats.TotalReviews,
		percent(stats.CorrectCount, stats.TotalReviews),
		stats.CorrectStreak,
		FormatMinutesAsDuration(stats.IntervalMinutes),
	))
	sb.WriteString(`</div>`)

	return sb.String()
}

// SessionSummary renders the running totals line shown above the card.
func SessionSummary(totals models.SessionTotals) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📖 %d/%d", totals.Processed, totals.Total))
	sb.WriteString(fmt.Sprintf(" · ✅ %d · ❌ %d · 🤔 %d", totals.Correct, totals.Incorrect, totals.Vague))
	sb.WriteString(fmt.Sprintf(" · ⭐ %d", totals.Score))

	return sb.String()
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}
