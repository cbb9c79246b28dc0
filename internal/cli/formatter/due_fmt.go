package formatter

import (
	"strings"

	"github.com/alexanderramin/fitremind/internal/domain"
)

// FormatDue renders the due-today batch, one message per line.
func FormatDue(batch []domain.DueNotification) string {
	if len(batch) == 0 {
		return Dim("Nothing due today.")
	}
	var b strings.Builder
	for _, n := range batch {
		b.WriteString(StyleYellow.Render("⏰ ") + StyleFg.Render(n.Message) + "  " + TruncID(n.ReminderID) + "\n")
	}
	return RenderBox("Due today", strings.TrimRight(b.String(), "\n"))
}

// FormatDecoded renders one raw value and the tokens it decodes to.
func FormatDecoded(raw string, tokens []string) string {
	arrow := StyleDim.Render(" → ")
	if len(tokens) == 0 {
		return raw + arrow + Dim("(empty)")
	}
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = StyleGreen.Render(t)
	}
	return raw + arrow + strings.Join(quoted, StyleDim.Render(" | "))
}
