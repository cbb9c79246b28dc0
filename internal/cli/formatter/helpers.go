package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDateFrom renders a calendar date relative to now: "Today",
// "Tomorrow", "Yesterday", or "Mon, Jan 2 2006".
func HumanDateFrom(t, now time.Time) string {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	default:
		return t.Format("Mon, Jan 2 2006")
	}
}

// StatusPill returns a colored indicator for a reminder status.
func StatusPill(status domain.ReminderStatus) string {
	switch status {
	case domain.StatusActive:
		return StyleGreen.Render("● Active")
	case domain.StatusPaused:
		return StyleYellow.Render("○ Paused")
	case domain.StatusDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// RepeatBadge renders the repeat rule, with decoded weekdays for weekly
// reminders when days is non-empty.
func RepeatBadge(r domain.Repeat, days []string) string {
	label := string(r)
	if label == "" {
		label = string(domain.RepeatNone)
	}
	if r == domain.RepeatWeekly && len(days) > 0 {
		short := make([]string, len(days))
		for i, d := range days {
			if len(d) > 3 {
				d = d[:3]
			}
			short[i] = d
		}
		label += " " + strings.Join(short, ",")
	}
	return RepeatStyle(r).Render(label)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// TokenList joins decoded tokens, or a dim placeholder when there are none.
func TokenList(tokens []string) string {
	if len(tokens) == 0 {
		return Dim("--")
	}
	return strings.Join(tokens, ", ")
}
