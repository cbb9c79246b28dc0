package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitremind/internal/decoder"
	"github.com/alexanderramin/fitremind/internal/domain"
)

// FormatReminderList renders reminders as a boxed table.
func FormatReminderList(reminders []*domain.Reminder) string {
	if len(reminders) == 0 {
		return Dim("No reminders.")
	}

	headers := []string{"ID", "TITLE", "SCHEDULE", "REPEAT", "METHOD", "STATUS"}
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		rows = append(rows, []string{
			TruncID(r.ID),
			Bold(r.Title),
			r.Schedule,
			RepeatBadge(r.Repeat, decoder.Decode(r.Days)),
			TokenList(decoder.Decode(r.Method)),
			StatusPill(r.Status),
		})
	}
	return RenderBox("Reminders", RenderTable(headers, rows))
}

// FormatReminderDetail renders a single reminder with its raw and decoded
// days/method fields side by side.
func FormatReminderDetail(r *domain.Reminder) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(r.Title) + "\n")
	if r.Description != "" {
		b.WriteString(StyleFg.Render(r.Description) + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value))
	}
	field("ID", r.ID)
	field("TYPE", domain.CoalesceStr(r.Type, Dim("--")))
	field("SCHEDULE", r.Schedule)
	if start, end, ok := r.TimeRange(); ok {
		field("TIME", fmt.Sprintf("%s – %s", start, end))
	}
	field("REPEAT", RepeatBadge(r.Repeat, nil))
	field("STATUS", StatusPill(r.Status))
	field("DAYS", TokenList(decoder.Decode(r.Days)))
	field("METHOD", TokenList(decoder.Decode(r.Method)))

	if len(r.Days) > 0 || len(r.Method) > 0 {
		b.WriteString("\n" + Dim("raw days:   "+fmt.Sprintf("%q", r.Days)) + "\n")
		b.WriteString(Dim("raw method: "+fmt.Sprintf("%q", r.Method)) + "\n")
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
