package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/calendar"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/spf13/pflag"
)

// repeatValue is a pflag.Value accepting none|daily|weekly|monthly.
type repeatValue struct{ target *domain.Repeat }

func newRepeatValue(target *domain.Repeat) pflag.Value { return &repeatValue{target: target} }

func (v *repeatValue) String() string { return string(*v.target) }
func (v *repeatValue) Type() string   { return "repeat" }

func (v *repeatValue) Set(s string) error {
	r, err := domain.ParseRepeat(s)
	if err != nil {
		return err
	}
	*v.target = r
	return nil
}

// statusValue is a pflag.Value accepting active|paused|done.
type statusValue struct{ target *domain.ReminderStatus }

func newStatusValue(target *domain.ReminderStatus) pflag.Value { return &statusValue{target: target} }

func (v *statusValue) String() string { return string(*v.target) }
func (v *statusValue) Type() string   { return "status" }

func (v *statusValue) Set(s string) error {
	st, err := domain.ParseStatus(s)
	if err != nil {
		return err
	}
	*v.target = st
	return nil
}

// viewValue is a pflag.Value accepting day|week|month.
type viewValue struct{ target *calendar.View }

func newViewValue(target *calendar.View) pflag.Value { return &viewValue{target: target} }

func (v *viewValue) String() string { return string(*v.target) }
func (v *viewValue) Type() string   { return "view" }

func (v *viewValue) Set(s string) error {
	view, err := calendar.ParseView(s)
	if err != nil {
		return err
	}
	*v.target = view
	return nil
}

// dateValue is a pflag.Value holding a local calendar date. It accepts
// YYYY-MM-DD, "today" and "tomorrow". An unset value reads as the zero time.
type dateValue struct {
	target *time.Time
	now    func() time.Time
}

func newDateValue(target *time.Time, now func() time.Time) pflag.Value {
	return &dateValue{target: target, now: now}
}

func (v *dateValue) Type() string { return "date" }

func (v *dateValue) String() string {
	if v.target.IsZero() {
		return ""
	}
	return v.target.Format(domain.ScheduleDateLayout)
}

func (v *dateValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		*v.target = v.now()
		return nil
	case "tomorrow":
		*v.target = v.now().AddDate(0, 0, 1)
		return nil
	}
	t, err := time.ParseInLocation(domain.ScheduleDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD, today or tomorrow")
	}
	*v.target = t
	return nil
}

// dateOrNow returns d, or now when the flag was left unset.
func dateOrNow(d time.Time, now func() time.Time) time.Time {
	if d.IsZero() {
		return now()
	}
	return d
}
