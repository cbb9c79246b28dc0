package notify

import (
	"fmt"
	"strings"
)

// TitlePlaceholder marks where the reminder title goes in a template.
const TitlePlaceholder = "%s"

// DefaultTemplates is the message pool used when none is configured.
var DefaultTemplates = []string{
	"Time to crush it: %s is on today's plan!",
	"Don't forget: %s is scheduled for today.",
	"Your future self says thanks. Today: %s",
	"Heads up! %s is waiting for you today.",
	"Stay on track: today is the day for %s.",
}

// ValidateTemplate checks that t has exactly one title placeholder.
func ValidateTemplate(t string) error {
	if n := strings.Count(t, TitlePlaceholder); n != 1 {
		return fmt.Errorf("template %q must contain exactly one %s placeholder, found %d", t, TitlePlaceholder, n)
	}
	return nil
}

// Render substitutes title into t. The title is inserted verbatim, so
// formatting verbs inside it are not interpreted.
func Render(t, title string) string {
	return strings.Replace(t, TitlePlaceholder, title, 1)
}
