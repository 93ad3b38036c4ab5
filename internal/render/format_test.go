package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutesAsDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"zero", 0, "Dưới 1 phút"},
		{"negative", -5, "Dưới 1 phút"},
		{"one minute", 1, "1 phút"},
		{"under an hour", 45, "45 phút"},
		{"exact hour", 60, "1 giờ"},
		{"hours and minutes", 125, "2 giờ 5 phút"},
		{"exact day", 1440, "1 ngày"},
		{"day and one hour", 1500, "1 ngày 1 giờ"},
		{"two days three hours", 3060, "2 ngày 3 giờ"},
		{"exact week", 10080, "1 tuần"},
		{"week and days", 12960, "1 tuần 2 ngày"},
		{"exact month", 43200, "1 tháng"},
		{"month and week", 53280, "1 tháng 1 tuần"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatMinutesAsDuration(tt.minutes))
		})
	}
}

func TestFormatMinutesAsDuration_ShowsTwoLargestUnits(t *testing.T) {
	t.Parallel()

	// 1 day, 1 hour, 5 minutes: the trailing minutes are dropped
	assert.Equal(t, "1 ngày 1 giờ", FormatMinutesAsDuration(1505))
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"valid", "2026-09-01T14:30:00Z", "14:30 01/09/2026"},
		{"empty", "", "Chưa có"},
		{"garbage", "not-a-date", "Chưa có"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatTimestamp(tt.iso))
		})
	}
}
