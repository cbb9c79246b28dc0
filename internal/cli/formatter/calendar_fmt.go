package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/decoder"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/alexanderramin/fitremind/internal/recurrence"
)

// CalendarPage is what the calendar command renders.
type CalendarPage struct {
	View      calendar.View
	Start     time.Time
	End       time.Time
	Reminders []domain.Reminder
}

// FormatCalendar renders one day, week or month page.
func FormatCalendar(page CalendarPage) string {
	title := fmt.Sprintf("%s · %s", strings.ToUpper(string(page.View)), windowLabel(page))
	if len(page.Reminders) == 0 {
		return RenderBox(title, Dim("Nothing scheduled."))
	}

	headers := []string{"DATE", "TIME", "TITLE", "REPEAT", "STATUS"}
	rows := make([][]string, 0, len(page.Reminders))
	for i := range page.Reminders {
		r := &page.Reminders[i]
		rows = append(rows, []string{
			scheduleDateLabel(r),
			timeLabel(r),
			Bold(r.Title),
			RepeatBadge(r.Repeat, decoder.Decode(r.Days)),
			StatusPill(r.Status),
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatUpcoming renders an agenda grouped by day.
func FormatUpcoming(agenda []calendar.DayAgenda, now time.Time) string {
	if len(agenda) == 0 {
		return RenderBox("Upcoming", Dim("Nothing coming up."))
	}

	var b strings.Builder
	for i, day := range agenda {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(day.Weekday) + " " +
			Dim(day.Date.Format(domain.ScheduleDateLayout)+" · "+HumanDateFrom(day.Date, now)) + "\n")
		for j := range day.Reminders {
			r := &day.Reminders[j]
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n", timeLabel(r), StyleFg.Render(r.Title), RepeatBadge(r.Repeat, nil)))
		}
	}
	return RenderBox("Upcoming", strings.TrimRight(b.String(), "\n"))
}

func windowLabel(page CalendarPage) string {
	switch page.View {
	case calendar.ViewMonth:
		return page.Start.Format("January 2006")
	case calendar.ViewWeek:
		return page.Start.Format("Jan 2") + " – " + page.End.Format("Jan 2 2006")
	default:
		return recurrence.WeekdayName(page.Start) + ", " + page.Start.Format("Jan 2 2006")
	}
}

func scheduleDateLabel(r *domain.Reminder) string {
	if _, ok := recurrence.ParseScheduleDate(r.Schedule); !ok {
		return StyleRed.Render("invalid")
	}
	date, _, _ := strings.Cut(strings.TrimSpace(r.Schedule), " ")
	return date
}

func timeLabel(r *domain.Reminder) string {
	start, end, ok := r.TimeRange()
	if !ok {
		return Dim("all day")
	}
	return start + "-" + end
}
