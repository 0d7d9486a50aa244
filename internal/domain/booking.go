package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slots is the fixed set of bookable half-hour call slots (operator local time).
// The gap between 11:30 AM and 1:00 PM is the lunch break.
var Slots = []string{
	"9:00 AM",
	"9:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"1:00 PM",
	"1:30 PM",
	"2:00 PM",
	"2:30 PM",
	"3:00 PM",
	"3:30 PM",
	"4:00 PM",
	"4:30 PM",
}

// Booking is a scheduled strategy call with a prospective partner.
// The four *Sent flags start false and only ever transition false -> true,
// each set by the corresponding send succeeding.
type Booking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	DealSize  string `json:"dealSize"`
	Challenge string `json:"currentChallenge,omitempty"`

	Date     string `json:"date"` // calendar date, "2006-01-02"
	TimeSlot string `json:"time"` // one of Slots, e.g. "10:00 AM"

	// MeetingAt is the absolute meeting instant, resolved once at creation
	// from Date+TimeSlot in the operator's timezone. All reminder-window
	// arithmetic uses this field, never a re-parse of Date/TimeSlot.
	MeetingAt time.Time `json:"meetingAt"`
	CreatedAt time.Time `json:"createdAt"`

	// Optional AI enrichment, attached at creation when generation succeeds.
	Research         *Research `json:"research,omitempty"`
	PersonalizedHook string    `json:"personalizedHook,omitempty"`
	ValueProposition string    `json:"valueProposition,omitempty"`
	Playbook         string    `json:"playbook,omitempty"` // HTML document

	ConfirmationSent      bool `json:"confirmationSent"`
	OneDayReminderSent    bool `json:"oneDayReminderSent"`
	TwoHourReminderSent   bool `json:"twoHourReminderSent"`
	ThirtyMinReminderSent bool `json:"thirtyMinReminderSent"`
}

// CompanyName returns the researched company name, or a fallback when the
// booking was never enriched.
func (b *Booking) CompanyName() string {
	if b.Research != nil && b.Research.CompanyName != "" {
		return b.Research.CompanyName
	}
	return "your company"
}

// FlagUpdate is a partial update of a booking's send flags.
// Nil fields are left untouched; flags only move false -> true.
type FlagUpdate struct {
	ConfirmationSent      *bool
	OneDayReminderSent    *bool
	TwoHourReminderSent   *bool
	ThirtyMinReminderSent *bool
}

// Apply merges the update into the booking.
func (u FlagUpdate) Apply(b *Booking) {
	if u.ConfirmationSent != nil && *u.ConfirmationSent {
		b.ConfirmationSent = true
	}
	if u.OneDayReminderSent != nil && *u.OneDayReminderSent {
		b.OneDayReminderSent = true
	}
	if u.TwoHourReminderSent != nil && *u.TwoHourReminderSent {
		b.TwoHourReminderSent = true
	}
	if u.ThirtyMinReminderSent != nil && *u.ThirtyMinReminderSent {
		b.ThirtyMinReminderSent = true
	}
}

// AttachEnrichment copies generated content onto the booking.
func (b *Booking) AttachEnrichment(e Enrichment) {
	b.Research = e.Research
	b.PersonalizedHook = e.PersonalizedHook
	b.ValueProposition = e.ValueProposition
	b.Playbook = e.Playbook
}

// ParseSlot parses a 12-hour clock slot like "10:00 AM" into hour and minute.
func ParseSlot(slot string) (hour, minute int, err error) {
	parts := strings.Fields(strings.TrimSpace(slot))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in slot %q", slot)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in slot %q", slot)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time slot %q out of range", slot)
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid meridiem in slot %q", slot)
	}

	return hour, minute, nil
}

// MeetingInstant resolves a calendar date and time slot into an absolute
// instant in the given location. Constructing the instant once, with an
// explicit timezone, avoids the DST ambiguity of re-combining the strings
// at every scheduler pass.
func MeetingInstant(date, slot string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	hour, minute, err := ParseSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// FormatDate renders a calendar date the way emails and booking responses
// show it, e.g. "Thursday, January 15, 2026".
func FormatDate(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return day.Format("Monday, January 2, 2006")
}
