// Package booking implements the call-booking intake flow: validate,
// persist, enrich, notify.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/email"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/mailer"
	"github.com/CourageAllien/revshare/internal/store"
)

// ErrValidation marks client errors; handlers map it to a 400.
var ErrValidation = errors.New("validation error")

// ContentGenerator is the optional enrichment collaborator.
type ContentGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, website, dealSize, challenge string) (*domain.Enrichment, error)
}

// Request is one booking form submission.
type Request struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	DealSize  string `json:"dealSize"`
	Challenge string `json:"currentChallenge"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Result is what the submitter gets back on success.
type Result struct {
	ID          string
	Date        string // human-formatted
	Time        string
	CompanyName string // empty when enrichment did not run
}

// Service handles booking intake.
type Service struct {
	store     store.Bookings
	generator ContentGenerator
	sender    mailer.Sender
	logger    logger.Logger

	operatorEmail string
	location      *time.Location
	now           func() time.Time
}

// NewService wires a booking intake service. generator may be a disabled
// client; operatorEmail may be empty (no operator notification).
func NewService(
	st store.Bookings,
	generator ContentGenerator,
	sender mailer.Sender,
	log logger.Logger,
	operatorEmail string,
	loc *time.Location,
) *Service {
	return &Service{
		store:         st,
		generator:     generator,
		sender:        sender,
		logger:        log,
		operatorEmail: operatorEmail,
		location:      loc,
		now:           time.Now,
	}
}

func (s *Service) validate(req Request) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing required field %q", ErrValidation, field)
	}
	switch {
	case strings.TrimSpace(req.Name) == "":
		return missing("name")
	case strings.TrimSpace(req.Email) == "":
		return missing("email")
	case strings.TrimSpace(req.Website) == "":
		return missing("website")
	case strings.TrimSpace(req.DealSize) == "":
		return missing("dealSize")
	case strings.TrimSpace(req.Date) == "":
		return missing("date")
	case strings.TrimSpace(req.Time) == "":
		return missing("time")
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return nil
}

// Create validates the submission, persists the booking, then runs the
// best-effort tail: enrichment and the two confirmation emails. The record
// hits the store before any external call, so a booking survives every
// downstream failure. Post-persistence errors are logged, never surfaced.
func (s *Service) Create(ctx context.Context, req Request) (*Result, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	meetingAt, err := domain.MeetingInstant(req.Date, req.Time, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	b := domain.Booking{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Website:   strings.TrimSpace(req.Website),
		DealSize:  req.DealSize,
		Challenge: strings.TrimSpace(req.Challenge),
		Date:      req.Date,
		TimeSlot:  req.Time,
		MeetingAt: meetingAt,
		CreatedAt: s.now().UTC(),
	}

	// Durability first: the one hard guarantee this flow makes.
	if err := s.store.Append(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.enrich(ctx, &b)
	s.sendConfirmation(ctx, &b)
	s.notifyOperator(ctx, &b)

	result := &Result{
		ID:   b.ID,
		Date: domain.FormatDate(b.Date),
		Time: b.TimeSlot,
	}
	if b.Research != nil {
		result.CompanyName = b.Research.CompanyName
	}
	return result, nil
}

// enrich attaches AI-generated content to the booking. Failure never fails
// the booking.
func (s *Service) enrich(ctx context.Context, b *domain.Booking) {
	if s.generator == nil || !s.generator.Enabled() {
		return
	}

	s.logger.Info("generating booking enrichment",
		logger.String("booking_id", b.ID),
		logger.String("website", b.Website))

	enr, err := s.generator.Generate(ctx, b.Website, b.DealSize, b.Challenge)
	if err != nil {
		s.logger.Warn("enrichment failed, continuing without personalization",
			logger.String("booking_id", b.ID),
			logger.Error(err))
		return
	}

	b.AttachEnrichment(*enr)

	// Persist so the reminder scheduler can personalize from the research.
	if err := s.store.UpdateEnrichment(ctx, b.ID, *enr); err != nil {
		s.logger.Warn("failed to persist enrichment",
			logger.String("booking_id", b.ID),
			logger.Error(err))
	}
}

func (s *Service) sendConfirmation(ctx context.Context, b *domain.Booking) {
	subject, html, err := email.Confirmation(b)
	if err != nil {
		s.logger.Error("failed to render confirmation email",
			logger.String("booking_id", b.ID),
			logger.Error(err))
		return
	}

	msg := mailer.Message{To: b.Email, Subject: subject, HTML: html}
	if b.Playbook != "" {
		msg.Attachments = []mailer.Attachment{playbookAttachment(b)}
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send confirmation email",
			logger.String("booking_id", b.ID),
			logger.Error(err))
		return
	}

	yes := true
	if err := s.store.UpdateFlags(ctx, b.ID, domain.FlagUpdate{ConfirmationSent: &yes}); err != nil {
		s.logger.Warn("failed to record confirmation flag",
			logger.String("booking_id", b.ID),
			logger.Error(err))
		return
	}
	b.ConfirmationSent = true
}

func (s *Service) notifyOperator(ctx context.Context, b *domain.Booking) {
	if s.operatorEmail == "" {
		return
	}

	subject, html, err := email.OperatorNotification(b)
	if err != nil {
		s.logger.Error("failed to render operator notification",
			logger.String("booking_id", b.ID),
			logger.Error(err))
		return
	}

	msg := mailer.Message{To: s.operatorEmail, Subject: subject, HTML: html}
	if b.Playbook != "" {
		msg.Attachments = []mailer.Attachment{playbookAttachment(b)}
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send operator notification",
			logger.String("booking_id", b.ID),
			logger.Error(err))
	}
}

func playbookAttachment(b *domain.Booking) mailer.Attachment {
	company := strings.ReplaceAll(b.CompanyName(), " ", "_")
	return mailer.Attachment{
		Filename:    fmt.Sprintf("RevShare_Playbook_%s.html", company),
		ContentType: "text/html",
		Content:     []byte(b.Playbook),
	}
}

// List returns every stored booking.
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.store.ListAll(ctx)
}
