package domain

import "fmt"

// ReminderKind identifies one of the three pre-meeting reminder emails.
type ReminderKind string

const (
	ReminderOneDay    ReminderKind = "one-day"
	ReminderTwoHours  ReminderKind = "two-hours"
	ReminderThirtyMin ReminderKind = "thirty-min"
)

// ParseReminderKind validates a reminder type from the wire.
func ParseReminderKind(s string) (ReminderKind, error) {
	switch ReminderKind(s) {
	case ReminderOneDay, ReminderTwoHours, ReminderThirtyMin:
		return ReminderKind(s), nil
	}
	return "", fmt.Errorf("invalid reminder type %q", s)
}
