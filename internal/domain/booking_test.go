package domain

import (
	"testing"
	"time"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name       string
		slot       string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "morning slot", slot: "9:00 AM", wantHour: 9, wantMinute: 0},
		{name: "half hour slot", slot: "10:30 AM", wantHour: 10, wantMinute: 30},
		{name: "afternoon slot", slot: "1:00 PM", wantHour: 13, wantMinute: 0},
		{name: "late afternoon", slot: "4:30 PM", wantHour: 16, wantMinute: 30},
		{name: "noon", slot: "12:00 PM", wantHour: 12, wantMinute: 0},
		{name: "midnight", slot: "12:00 AM", wantHour: 0, wantMinute: 0},
		{name: "lowercase meridiem", slot: "2:30 pm", wantHour: 14, wantMinute: 30},
		{name: "missing meridiem", slot: "10:00", wantErr: true},
		{name: "garbage", slot: "soonish", wantErr: true},
		{name: "hour out of range", slot: "13:00 PM", wantErr: true},
		{name: "empty", slot: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseSlot(tt.slot)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSlot(%q) = %d:%d, want error", tt.slot, hour, minute)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSlot(%q) error: %v", tt.slot, err)
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("ParseSlot(%q) = %d:%02d, want %d:%02d", tt.slot, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestMeetingInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	got, err := MeetingInstant("2026-01-15", "10:00 AM", loc)
	if err != nil {
		t.Fatalf("MeetingInstant() error: %v", err)
	}
	want := time.Date(2026, time.January, 15, 10, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("MeetingInstant() = %v, want %v", got, want)
	}

	// A date on the other side of a DST transition must still land on the
	// slot's wall-clock time in the operator's zone.
	got, err = MeetingInstant("2026-07-15", "10:00 AM", loc)
	if err != nil {
		t.Fatalf("MeetingInstant() error: %v", err)
	}
	if got.Hour() != 10 || got.Minute() != 0 {
		t.Errorf("MeetingInstant() wall clock = %d:%02d, want 10:00", got.Hour(), got.Minute())
	}

	if _, err := MeetingInstant("not-a-date", "10:00 AM", loc); err == nil {
		t.Error("MeetingInstant() with invalid date should fail")
	}
	if _, err := MeetingInstant("2026-01-15", "25:00 XM", loc); err == nil {
		t.Error("MeetingInstant() with invalid slot should fail")
	}
}

func TestFlagUpdateApply(t *testing.T) {
	yes := true
	no := false

	b := Booking{ID: "abc"}
	FlagUpdate{OneDayReminderSent: &yes}.Apply(&b)
	if !b.OneDayReminderSent {
		t.Error("OneDayReminderSent should be set")
	}
	if b.ConfirmationSent || b.TwoHourReminderSent || b.ThirtyMinReminderSent {
		t.Error("untouched flags must stay false")
	}

	// Flags never revert.
	FlagUpdate{OneDayReminderSent: &no}.Apply(&b)
	if !b.OneDayReminderSent {
		t.Error("a set flag must never revert to false")
	}
}

func TestCompanyName(t *testing.T) {
	b := Booking{}
	if got := b.CompanyName(); got != "your company" {
		t.Errorf("CompanyName() without research = %q", got)
	}

	b.Research = &Research{CompanyName: "Acme Corp"}
	if got := b.CompanyName(); got != "Acme Corp" {
		t.Errorf("CompanyName() = %q, want %q", got, "Acme Corp")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-01-15"); got != "Thursday, January 15, 2026" {
		t.Errorf("FormatDate() = %q", got)
	}
	// Unparseable input falls through unchanged.
	if got := FormatDate("whenever"); got != "whenever" {
		t.Errorf("FormatDate() = %q", got)
	}
}
