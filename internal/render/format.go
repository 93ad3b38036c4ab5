package render

import (
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
	minutesPerWeek  = 7 * minutesPerDay
	minutesPerMonth = 30 * minutesPerDay
)

// FormatMinutesAsDuration renders a scheduling interval as a human string,
// e.g. "2 ngày 3 giờ". Units decompose months→weeks→days→hours→minutes with
// each remainder carried to the next smaller unit; at most the two largest
// non-zero units are shown.
func FormatMinutesAsDuration(minutes int) string {
	if minutes < 1 {
		return "Dưới 1 phút"
	}

	units := []struct {
		size int
		name string
	}{
		{minutesPerMonth, "tháng"},
		{minutesPerWeek, "tuần"},
		{minutesPerDay, "ngày"},
		{minutesPerHour, "giờ"},
		{1, "phút"},
	}

	parts := make([]string, 0, 2)
	rest := minutes
	for _, u := range units {
		if len(parts) == 2 {
			break
		}
		n := rest / u.size
		rest %= u.size
		if n > 0 {
			parts = append(parts, strconv.Itoa(n)+" "+u.name)
		}
	}

	return strings.Join(parts, " ")
}

// FormatTimestamp renders an ISO timestamp as a localized date/time, or a
// fixed fallback when the value is absent or unparsable.
func FormatTimestamp(iso string) string {
	if iso == "" {
		return "Chưa có"
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "Chưa có"
	}

	return t.Format("15:04 02/01/2006")
}
