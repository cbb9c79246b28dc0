package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitremind/internal/cli/formatter"
	"github.com/alexanderramin/fitremind/internal/decoder"
	"github.com/alexanderramin/fitremind/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fitremindHuhTheme returns a huh theme in the formatter palette.
func fitremindHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// reminderForm builds the two-page add form. The weekday page is hidden
// unless the repeat rule is weekly.
func reminderForm(r *domain.Reminder, repeat *string, today time.Time) *huh.Form {
	if r.Schedule == "" {
		r.Schedule = today.Format(domain.ScheduleDateLayout)
	}
	if *repeat == "" {
		*repeat = string(domain.RepeatNone)
	}

	repeatOptions := make([]huh.Option[string], 0, len(domain.ValidRepeats))
	for _, rep := range []domain.Repeat{domain.RepeatNone, domain.RepeatDaily, domain.RepeatWeekly, domain.RepeatMonthly} {
		repeatOptions = append(repeatOptions, huh.NewOption(strings.ToUpper(string(rep)[:1])+string(rep)[1:], string(rep)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Leg day").
				Value(&r.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Type").
				Placeholder("workout").
				Value(&r.Type),
			huh.NewInput().
				Title("Schedule").
				Description("YYYY-MM-DD or YYYY-MM-DD HH:mm - HH:mm").
				Value(&r.Schedule).
				Validate(domain.ValidateSchedule),
			huh.NewSelect[string]().
				Title("Repeat").
				Options(repeatOptions...).
				Value(repeat),
			huh.NewMultiSelect[string]().
				Title("Notify via").
				Options(huh.NewOptions(decoder.Methods...)...).
				Value(&r.Method),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("On which days?").
				Options(huh.NewOptions(decoder.Weekdays...)...).
				Value(&r.Days).
				Validate(validateSomeDays),
		).WithHideFunc(func() bool { return *repeat != string(domain.RepeatWeekly) }),
	).WithTheme(fitremindHuhTheme()).WithShowHelp(false)
}

// runReminderForm fills r interactively, keeping any values already set by
// flags as defaults.
func runReminderForm(r *domain.Reminder, today time.Time) error {
	repeat := string(r.Repeat)
	if err := reminderForm(r, &repeat, today).Run(); err != nil {
		return fmt.Errorf("reminder form: %w", err)
	}
	rep, err := domain.ParseRepeat(repeat)
	if err != nil {
		return err
	}
	r.Repeat = rep
	if rep != domain.RepeatWeekly {
		r.Days = nil
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateSomeDays(days []string) error {
	if len(days) == 0 {
		return fmt.Errorf("pick at least one day")
	}
	return nil
}
