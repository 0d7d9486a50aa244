// Package scheduler decides which reminder emails are due and sends them.
// It keeps no state of its own between runs: the send flags on each booking
// record are the only memory, so a run can be triggered by an external cron
// hit or the internal ticker interchangeably.
package scheduler

import (
	"context"
	"time"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/email"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/mailer"
	"github.com/CourageAllien/revshare/internal/store"
)

// Reminder windows, measured from "now" to the meeting instant. A booking
// can sit inside several windows at once; each is gated by its own flag.
const (
	oneDayMinHours = 20
	oneDayMaxHours = 28

	twoHourMinMinutes = 90
	twoHourMaxMinutes = 150

	thirtyMinMinMinutes = 20
	thirtyMinMaxMinutes = 45
)

// CopyGenerator produces personalized reminder copy. Optional: any error
// falls back to the static template.
type CopyGenerator interface {
	Enabled() bool
	ReminderCopy(ctx context.Context, kind domain.ReminderKind, name, date, slot string, research *domain.Research, hook string) (subject, body string, err error)
}

// Summary is the aggregate result of one scheduler pass.
type Summary struct {
	Processed          int       `json:"processed"`
	OneDayReminders    int       `json:"oneDayReminders"`
	TwoHourReminders   int       `json:"twoHourReminders"`
	ThirtyMinReminders int       `json:"thirtyMinReminders"`
	Errors             int       `json:"errors"`
	Timestamp          time.Time `json:"timestamp"`
}

// Reminders scans all bookings and fires whichever reminders are due.
type Reminders struct {
	store     store.Bookings
	sender    mailer.Sender
	generator CopyGenerator
	logger    logger.Logger
}

// NewReminders wires a reminder scheduler. generator may be nil or disabled.
func NewReminders(st store.Bookings, sender mailer.Sender, generator CopyGenerator, log logger.Logger) *Reminders {
	return &Reminders{
		store:     st,
		sender:    sender,
		generator: generator,
		logger:    log,
	}
}

// Run evaluates every booking against the three reminder windows at the
// given instant. One booking's failure never aborts the batch; failed sends
// leave the flag down so the next run retries.
func (r *Reminders) Run(ctx context.Context, now time.Time) (Summary, error) {
	summary := Summary{Timestamp: now.UTC()}

	bookings, err := r.store.ListAll(ctx)
	if err != nil {
		r.logger.Error("reminder run failed to list bookings", logger.Error(err))
		return summary, err
	}

	for i := range bookings {
		b := &bookings[i]
		summary.Processed++

		minutesUntil := int(b.MeetingAt.Sub(now).Minutes())
		if minutesUntil < 0 {
			// Meeting already happened; stale records must never trigger.
			continue
		}
		hoursUntil := minutesUntil / 60

		if !b.OneDayReminderSent && hoursUntil >= oneDayMinHours && hoursUntil <= oneDayMaxHours {
			if r.send(ctx, b, domain.ReminderOneDay) {
				summary.OneDayReminders++
			} else {
				summary.Errors++
			}
		}

		if !b.TwoHourReminderSent && minutesUntil >= twoHourMinMinutes && minutesUntil <= twoHourMaxMinutes {
			if r.send(ctx, b, domain.ReminderTwoHours) {
				summary.TwoHourReminders++
			} else {
				summary.Errors++
			}
		}

		if !b.ThirtyMinReminderSent && minutesUntil >= thirtyMinMinMinutes && minutesUntil <= thirtyMinMaxMinutes {
			if r.send(ctx, b, domain.ReminderThirtyMin) {
				summary.ThirtyMinReminders++
			} else {
				summary.Errors++
			}
		}
	}

	r.logger.Info("reminder run complete",
		logger.Int("processed", summary.Processed),
		logger.Int("one_day", summary.OneDayReminders),
		logger.Int("two_hour", summary.TwoHourReminders),
		logger.Int("thirty_min", summary.ThirtyMinReminders),
		logger.Int("errors", summary.Errors))
	return summary, nil
}

// send delivers one reminder and, on success, raises the matching flag.
func (r *Reminders) send(ctx context.Context, b *domain.Booking, kind domain.ReminderKind) bool {
	subject, body := r.personalizedCopy(ctx, b, kind)

	subject, html, err := email.Reminder(kind, b, subject, body)
	if err != nil {
		r.logger.Error("failed to render reminder",
			logger.String("booking_id", b.ID),
			logger.String("kind", string(kind)),
			logger.Error(err))
		return false
	}

	if err := r.sender.Send(ctx, mailer.Message{To: b.Email, Subject: subject, HTML: html}); err != nil {
		r.logger.Error("failed to send reminder",
			logger.String("booking_id", b.ID),
			logger.String("kind", string(kind)),
			logger.Error(err))
		return false
	}

	yes := true
	var update domain.FlagUpdate
	switch kind {
	case domain.ReminderOneDay:
		update.OneDayReminderSent = &yes
		b.OneDayReminderSent = true
	case domain.ReminderTwoHours:
		update.TwoHourReminderSent = &yes
		b.TwoHourReminderSent = true
	case domain.ReminderThirtyMin:
		update.ThirtyMinReminderSent = &yes
		b.ThirtyMinReminderSent = true
	}

	if err := r.store.UpdateFlags(ctx, b.ID, update); err != nil {
		// The email went out but the flag write failed; the next run may
		// double-send. Surface loudly.
		r.logger.Error("reminder sent but flag update failed",
			logger.String("booking_id", b.ID),
			logger.String("kind", string(kind)),
			logger.Error(err))
	}

	r.logger.Info("reminder sent",
		logger.String("booking_id", b.ID),
		logger.String("kind", string(kind)),
		logger.String("to", b.Email))
	return true
}

// personalizedCopy asks the content generator for custom subject/body.
// Empty returns mean "use the static template".
func (r *Reminders) personalizedCopy(ctx context.Context, b *domain.Booking, kind domain.ReminderKind) (subject, body string) {
	if r.generator == nil || !r.generator.Enabled() || b.Research == nil {
		return "", ""
	}

	subject, body, err := r.generator.ReminderCopy(ctx, kind,
		b.Name, domain.FormatDate(b.Date), b.TimeSlot, b.Research, b.PersonalizedHook)
	if err != nil {
		r.logger.Warn("personalized reminder copy failed, using static copy",
			logger.String("booking_id", b.ID),
			logger.String("kind", string(kind)),
			logger.Error(err))
		return "", ""
	}
	return subject, body
}

// SendAdhoc sends one reminder immediately, outside the window logic.
// Backs the manual send endpoint; no flags are touched.
func (r *Reminders) SendAdhoc(ctx context.Context, kind domain.ReminderKind, name, to, date, slot string) error {
	b := &domain.Booking{Name: name, Email: to, Date: date, TimeSlot: slot}

	subject, html, err := email.Reminder(kind, b, "", "")
	if err != nil {
		return err
	}
	return r.sender.Send(ctx, mailer.Message{To: to, Subject: subject, HTML: html})
}
