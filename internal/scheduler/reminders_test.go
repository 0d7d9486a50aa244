package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/mailer"
	"github.com/CourageAllien/revshare/internal/store/memory"
)

type capturingSender struct {
	sent []mailer.Message
	fail bool
}

func (s *capturingSender) Send(_ context.Context, msg mailer.Message) error {
	if s.fail {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

type copyStub struct {
	enabled bool
	subject string
	body    string
	err     error
	calls   int
}

func (g *copyStub) Enabled() bool { return g.enabled }

func (g *copyStub) ReminderCopy(_ context.Context, _ domain.ReminderKind, _, _, _ string, _ *domain.Research, _ string) (string, string, error) {
	g.calls++
	return g.subject, g.body, g.err
}

func seedBooking(t *testing.T, st *memory.Store, meetingAt time.Time) domain.Booking {
	t.Helper()
	b := domain.Booking{
		ID:        "bk-1",
		Name:      "Maya Chen",
		Email:     "maya@acme.com",
		Website:   "acme.com",
		DealSize:  "25k-50k",
		Date:      meetingAt.Format("2006-01-02"),
		TimeSlot:  "10:00 AM",
		MeetingAt: meetingAt,
		CreatedAt: meetingAt.Add(-72 * time.Hour),
	}
	if err := st.Append(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func TestRunOneDayWindow(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seedBooking(t, st, now.Add(24*time.Hour))

	r := NewReminders(st, sender, nil, logger.New("error", false))
	summary, err := r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Processed != 1 || summary.OneDayReminders != 1 || summary.Errors != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.TwoHourReminders != 0 || summary.ThirtyMinReminders != 0 {
		t.Fatalf("only the one-day reminder should fire: %+v", summary)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].Subject, "Tomorrow") {
		t.Errorf("one-day subject = %q", sender.sent[0].Subject)
	}

	got, err := st.GetByID(context.Background(), "bk-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.OneDayReminderSent {
		t.Error("one-day flag not set after successful send")
	}

	// Same instant again: the flag must make the run a no-op.
	summary, err = r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if summary.OneDayReminders != 0 || len(sender.sent) != 1 {
		t.Fatalf("second run re-sent: summary=%+v sent=%d", summary, len(sender.sent))
	}
}

func TestRunWindowSelection(t *testing.T) {
	tests := []struct {
		name      string
		lead      time.Duration
		oneDay    int
		twoHour   int
		thirtyMin int
	}{
		{"two hours out", 2 * time.Hour, 0, 1, 0},
		{"ninety minutes, lower two-hour bound", 90 * time.Minute, 0, 1, 0},
		{"eighty-nine minutes, below the two-hour window", 89 * time.Minute, 0, 0, 0},
		{"nineteen minutes, below the thirty-min window", 19 * time.Minute, 0, 0, 0},
		{"forty-six minutes, above the thirty-min window", 46 * time.Minute, 0, 0, 0},
		{"just under twenty hours", 19*time.Hour + 59*time.Minute, 0, 0, 0},
		{"thirty minutes out", 30 * time.Minute, 0, 0, 1},
		{"forty-five minutes, both upper bound and not", 45 * time.Minute, 0, 0, 1},
		{"twenty hours, lower one-day bound", 20 * time.Hour, 1, 0, 0},
		{"twenty-eight hours, upper one-day bound", 28 * time.Hour, 1, 0, 0},
		{"twenty-nine hours, outside every window", 29 * time.Hour, 0, 0, 0},
		{"ten minutes, too close", 10 * time.Minute, 0, 0, 0},
		{"an hour out, between windows", time.Hour, 0, 0, 0},
	}

	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := memory.NewStore()
			sender := &capturingSender{}
			seedBooking(t, st, now.Add(tt.lead))

			r := NewReminders(st, sender, nil, logger.New("error", false))
			summary, err := r.Run(context.Background(), now)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if summary.OneDayReminders != tt.oneDay ||
				summary.TwoHourReminders != tt.twoHour ||
				summary.ThirtyMinReminders != tt.thirtyMin {
				t.Errorf("summary = %+v, want oneDay=%d twoHour=%d thirtyMin=%d",
					summary, tt.oneDay, tt.twoHour, tt.thirtyMin)
			}
		})
	}
}

func TestRunSkipsPastMeetings(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seedBooking(t, st, now.Add(-2*time.Hour))

	r := NewReminders(st, sender, nil, logger.New("error", false))
	summary, err := r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Processed != 1 {
		t.Fatalf("Processed = %d, want 1", summary.Processed)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("past meeting triggered %d sends", len(sender.sent))
	}

	got, err := st.GetByID(context.Background(), "bk-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OneDayReminderSent || got.TwoHourReminderSent || got.ThirtyMinReminderSent {
		t.Errorf("flags changed for a past meeting: %+v", got)
	}
}

func TestRunSendFailureLeavesFlagDown(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{fail: true}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seedBooking(t, st, now.Add(2*time.Hour))

	r := NewReminders(st, sender, nil, logger.New("error", false))
	summary, err := r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Errors != 1 || summary.TwoHourReminders != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	got, err := st.GetByID(context.Background(), "bk-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TwoHourReminderSent {
		t.Error("flag set despite send failure")
	}

	// Sender recovers; the next run retries and flips the flag.
	sender.fail = false
	summary, err = r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("retry Run: %v", err)
	}
	if summary.TwoHourReminders != 1 {
		t.Fatalf("retry did not send: %+v", summary)
	}
}

func TestRunPersonalizedCopy(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	b := seedBooking(t, st, now.Add(2*time.Hour))

	research := &domain.Research{CompanyName: "Acme Corp"}
	if err := st.UpdateEnrichment(context.Background(), b.ID, domain.Enrichment{
		Research:         research,
		PersonalizedHook: "Your fleet tracking pages convert below benchmark",
	}); err != nil {
		t.Fatalf("UpdateEnrichment: %v", err)
	}

	gen := &copyStub{
		enabled: true,
		subject: "Maya, 2 hours until we fix Acme Corp's funnel",
		body:    "<p>See you soon.</p>",
	}
	r := NewReminders(st, sender, gen, logger.New("error", false))
	if _, err := r.Run(context.Background(), now); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(sender.sent))
	}
	if sender.sent[0].Subject != gen.subject {
		t.Errorf("subject = %q, want personalized %q", sender.sent[0].Subject, gen.subject)
	}
	if !strings.Contains(sender.sent[0].HTML, "See you soon.") {
		t.Error("personalized body missing from email")
	}
}

func TestRunPersonalizationFallsBackOnError(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	b := seedBooking(t, st, now.Add(2*time.Hour))

	if err := st.UpdateEnrichment(context.Background(), b.ID, domain.Enrichment{
		Research: &domain.Research{CompanyName: "Acme Corp"},
	}); err != nil {
		t.Fatalf("UpdateEnrichment: %v", err)
	}

	gen := &copyStub{enabled: true, err: errors.New("model overloaded")}
	r := NewReminders(st, sender, gen, logger.New("error", false))
	summary, err := r.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.TwoHourReminders != 1 || len(sender.sent) != 1 {
		t.Fatalf("fallback did not send: summary=%+v sent=%d", summary, len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].Subject, "In 2 hours") {
		t.Errorf("expected static subject, got %q", sender.sent[0].Subject)
	}
}

func TestRunSkipsGeneratorWithoutResearch(t *testing.T) {
	st := memory.NewStore()
	sender := &capturingSender{}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seedBooking(t, st, now.Add(2*time.Hour))

	gen := &copyStub{enabled: true, subject: "never used"}
	r := NewReminders(st, sender, gen, logger.New("error", false))
	if _, err := r.Run(context.Background(), now); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if gen.calls != 0 {
		t.Errorf("generator called %d times for a booking with no research", gen.calls)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(sender.sent))
	}
}

func TestSendAdhoc(t *testing.T) {
	sender := &capturingSender{}
	r := NewReminders(memory.NewStore(), sender, nil, logger.New("error", false))

	err := r.SendAdhoc(context.Background(), domain.ReminderThirtyMin,
		"Maya Chen", "maya@acme.com", "2026-03-10", "10:00 AM")
	if err != nil {
		t.Fatalf("SendAdhoc: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(sender.sent))
	}
	if sender.sent[0].To != "maya@acme.com" {
		t.Errorf("To = %q", sender.sent[0].To)
	}
	if !strings.Contains(sender.sent[0].Subject, "30 mins") {
		t.Errorf("thirty-min subject = %q", sender.sent[0].Subject)
	}
}
