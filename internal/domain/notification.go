package domain

// DueNotification is the text payload for a reminder that is due today.
// It is created transiently and never persisted.
type DueNotification struct {
	ReminderID string
	Title      string
	Message    string
}
