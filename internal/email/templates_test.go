package email

import (
	"strings"
	"testing"

	"github.com/CourageAllien/revshare/internal/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "bk-1",
		Name:      "Jordan Reyes",
		Email:     "jordan@acme.io",
		Website:   "acme.io",
		DealSize:  "$10k-$25k",
		Challenge: "no predictable pipeline",
		Date:      "2026-03-10",
		TimeSlot:  "10:00 AM",
	}
}

func TestConfirmation(t *testing.T) {
	b := sampleBooking()

	subject, html, err := Confirmation(b)
	if err != nil {
		t.Fatalf("Confirmation() error: %v", err)
	}
	if !strings.Contains(subject, "Tuesday, March 10, 2026") {
		t.Errorf("subject = %q, should carry the formatted date", subject)
	}
	if strings.Contains(subject, "Playbook") {
		t.Error("subject should not mention the playbook when none is attached")
	}
	for _, want := range []string{"Jordan", "your company", "10:00 AM"} {
		if !strings.Contains(html, want) {
			t.Errorf("confirmation html missing %q", want)
		}
	}
	if strings.Contains(html, "Playbook is Attached") {
		t.Error("playbook callout should be absent without a playbook")
	}

	b.Playbook = "<html>playbook</html>"
	b.Research = &domain.Research{CompanyName: "Acme Corp"}
	subject, html, err = Confirmation(b)
	if err != nil {
		t.Fatalf("Confirmation() error: %v", err)
	}
	if !strings.Contains(subject, "Your Custom Playbook") {
		t.Errorf("subject = %q, should mention the playbook", subject)
	}
	if !strings.Contains(html, "Acme Corp") || !strings.Contains(html, "Playbook is Attached") {
		t.Error("enriched confirmation should name the company and the attachment")
	}
}

func TestOperatorNotification(t *testing.T) {
	b := sampleBooking()
	b.Research = &domain.Research{
		CompanyName:        "Acme Corp",
		CompanyDescription: "B2B analytics consultancy",
		TargetAudience: domain.TargetAudience{
			PainPoints: []string{"p1", "p2", "p3", "p4"},
		},
	}

	subject, html, err := OperatorNotification(b)
	if err != nil {
		t.Fatalf("OperatorNotification() error: %v", err)
	}
	if subject != "New Booking: Jordan Reyes from Acme Corp" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"jordan@acme.io", "$10k-$25k", "no predictable pipeline", "B2B analytics consultancy"} {
		if !strings.Contains(html, want) {
			t.Errorf("operator html missing %q", want)
		}
	}
	// only the first three pain points are summarized
	if strings.Contains(html, "p4") {
		t.Error("pain point summary should be capped at three")
	}
}

func TestReminder(t *testing.T) {
	b := sampleBooking()

	tests := []struct {
		kind        domain.ReminderKind
		wantSubject string
		wantLabel   string
	}{
		{domain.ReminderOneDay, "Tomorrow: Your strategy call with RevShare", "Tomorrow"},
		{domain.ReminderTwoHours, "In 2 hours: Strategy call with RevShare", "In 2 Hours"},
		{domain.ReminderThirtyMin, "Starting in 30 mins! 🚀", "In 30 Minutes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			subject, html, err := Reminder(tt.kind, b, "", "")
			if err != nil {
				t.Fatalf("Reminder() error: %v", err)
			}
			if subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", subject, tt.wantSubject)
			}
			if !strings.Contains(html, tt.wantLabel) {
				t.Errorf("html missing label %q", tt.wantLabel)
			}
			if !strings.Contains(html, "Jordan") {
				t.Error("html missing first name")
			}
		})
	}

	if _, _, err := Reminder("fortnight", b, "", ""); err == nil {
		t.Error("unknown reminder kind should error")
	}
}

func TestReminderOverrides(t *testing.T) {
	b := sampleBooking()

	subject, html, err := Reminder(domain.ReminderOneDay, b, "Custom subject", "Custom body text.")
	if err != nil {
		t.Fatalf("Reminder() error: %v", err)
	}
	if subject != "Custom subject" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(html, "Custom body text.") {
		t.Error("html should carry the override body")
	}
}

func TestLeadMagnet(t *testing.T) {
	subject, html, err := LeadMagnet(LeadMagnetData{
		CompanyName:  "Acme Corp",
		Title:        "5 Signs Your Offer is Ready for Cold Email",
		Emoji:        "🎯",
		Intro:        "Here's why this matters for you.",
		Sections:     []LeadMagnetSection{{Heading: "Sign #1", Content: "Content.", PersonalizedTip: "Do this."}},
		CallToAction: "Book a call.",
	})
	if err != nil {
		t.Fatalf("LeadMagnet() error: %v", err)
	}
	if subject != "🎯 5 Signs Your Offer is Ready for Cold Email - Personalized for Acme Corp" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Sign #1", "Do this.", "Book a call."} {
		if !strings.Contains(html, want) {
			t.Errorf("lead magnet html missing %q", want)
		}
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jordan Reyes", "Jordan"},
		{"Cher", "Cher"},
		{"  Ada  Lovelace ", "Ada"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := firstName(tt.in); got != tt.want {
			t.Errorf("firstName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
