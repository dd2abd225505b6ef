package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	return StyleDim.Render(ShortID(id))
}

// ShortID returns the first 8 characters of an ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatMinutes converts raw minutes into a compact form such as "1h 5m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatDuration renders total minutes as "H h M m"; hours are not capped.
func FormatDuration(min int) string {
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%d h %d m", min/60, min%60)
}

// FormatDistance renders miles with at most two decimals and no trailing zeros.
func FormatDistance(mi float64) string {
	if math.IsNaN(mi) || math.IsInf(mi, 0) {
		mi = 0
	}
	rounded := math.Round(mi*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " miles"
}

// WorkoutDate formats a workout timestamp like "Friday, Mar 15th, 2024, 09:30 AM".
func WorkoutDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s, %s %d%s, %d, %s",
		t.Format("Monday"), t.Format("Jan"), t.Day(), ordinal(t.Day()), t.Year(), t.Format("03:04 PM"))
}

// HumanDate returns "Today", "Yesterday" or a short absolute date relative to now.
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.In(now.Location()).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.In(now.Location()).Format("Jan 2, 2006")
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
