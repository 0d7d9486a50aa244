// Package leadmagnet generates and delivers personalized marketing guides
// to visitors who leave a company email address.
package leadmagnet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CourageAllien/revshare/internal/contentgen"
	"github.com/CourageAllien/revshare/internal/email"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/mailer"
)

var (
	// ErrEmailRequired means the request carried no usable email address.
	ErrEmailRequired = errors.New("email is required")
	// ErrPersonalEmail means the address belongs to a consumer provider.
	ErrPersonalEmail = errors.New("personal email addresses are not accepted")
)

// Generator produces the personalized guide content.
type Generator interface {
	Enabled() bool
	LeadMagnet(ctx context.Context, email, companyDomain, topicTitle, topicPrompt string) (*contentgen.LeadMagnetContent, error)
}

// Result is what a successful guide delivery reports back.
type Result struct {
	CompanyName string `json:"companyName"`
	TopicTitle  string `json:"topicTitle"`
}

// Service ties topic rotation, content generation and delivery together.
type Service struct {
	topics    []Topic
	generator Generator
	sender    mailer.Sender
	logger    logger.Logger
	now       func() time.Time
}

// NewService wires a lead magnet service over the given topic catalogue.
func NewService(topics []Topic, generator Generator, sender mailer.Sender, log logger.Logger) *Service {
	return &Service{
		topics:    topics,
		generator: generator,
		sender:    sender,
		logger:    log,
		now:       time.Now,
	}
}

// TodaysTopic returns the catalogue entry for the current day.
func (s *Service) TodaysTopic() Topic {
	return TopicFor(s.topics, s.now())
}

// Deliver generates today's guide personalized to the visitor's company and
// emails it to them. Unlike booking enrichment this is not best-effort: the
// guide IS the product here, so generation failures surface to the caller.
func (s *Service) Deliver(ctx context.Context, to string) (Result, error) {
	if to == "" {
		return Result{}, ErrEmailRequired
	}
	if IsPersonalEmail(to) {
		return Result{}, ErrPersonalEmail
	}
	domain := ExtractDomain(to)

	if s.generator == nil || !s.generator.Enabled() {
		return Result{}, errors.New("content generation is not configured")
	}

	topic := s.TodaysTopic()
	s.logger.Info("generating lead magnet",
		logger.String("domain", domain),
		logger.String("topic", topic.ID))

	content, err := s.generator.LeadMagnet(ctx, to, domain, topic.Title, topic.Prompt)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate guide: %w", err)
	}

	sections := make([]email.LeadMagnetSection, len(content.Sections))
	for i, sec := range content.Sections {
		sections[i] = email.LeadMagnetSection{
			Heading:         sec.Heading,
			Content:         sec.Content,
			PersonalizedTip: sec.PersonalizedTip,
		}
	}

	subject, html, err := email.LeadMagnet(email.LeadMagnetData{
		CompanyName:  content.CompanyName,
		Title:        content.Title,
		Emoji:        content.Emoji,
		Intro:        content.PersonalizedIntro,
		Sections:     sections,
		CallToAction: content.CallToAction,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to render guide email: %w", err)
	}

	if err := s.sender.Send(ctx, mailer.Message{To: to, Subject: subject, HTML: html}); err != nil {
		return Result{}, fmt.Errorf("failed to send guide: %w", err)
	}

	s.logger.Info("lead magnet delivered",
		logger.String("to", to),
		logger.String("company", content.CompanyName),
		logger.String("topic", topic.ID))
	return Result{CompanyName: content.CompanyName, TopicTitle: topic.Title}, nil
}
