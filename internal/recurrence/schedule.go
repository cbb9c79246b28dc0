package recurrence

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/domain"
)

// dateSegment returns the part of a schedule before the first space, which
// drops the " HH:mm - HH:mm" suffix of timed schedules.
func dateSegment(schedule string) string {
	s := strings.TrimSpace(schedule)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseScheduleDate parses the leading yyyy-MM-dd segment of a schedule into a
// civil date (midnight UTC). ok is false when the segment does not parse.
func ParseScheduleDate(schedule string) (date time.Time, ok bool) {
	t, err := time.Parse(domain.ScheduleDateLayout, dateSegment(schedule))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ScheduleDayOfMonth reads the day-of-month token of the schedule's date
// segment (the third '-'-delimited field) without parsing the full date.
func ScheduleDayOfMonth(schedule string) (day int, ok bool) {
	parts := strings.Split(dateSegment(schedule), "-")
	if len(parts) < 3 {
		return 0, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

// civil truncates t to its calendar date in t's own location, expressed as
// midnight UTC so dates from different locations compare by Y/M/D only.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return civil(a).Equal(civil(b))
}

var weekdayNames = [7]string{
	time.Sunday:    "Sunday",
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
}

// WeekdayName returns the canonical English weekday name of date. It never
// consults the process locale.
func WeekdayName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// WeekStart returns the Sunday that starts the Sunday-to-Saturday week
// containing date, as a civil date.
func WeekStart(date time.Time) time.Time {
	d := civil(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
