package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/CourageAllien/revshare/internal/logger"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string // e.g. "text/html"
	Content     []byte
}

// Message is one outgoing email. HTML body, optional attachments.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender sends one email per call. No retry, no queueing, no delivery
// confirmation: callers log failures and move on.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // e.g. `"RevShare" <bookings@revshare.example>`
}

// SMTPSender sends mail through net/smtp with PLAIN auth.
type SMTPSender struct {
	cfg  SMTPConfig
	auth smtp.Auth
	addr string
}

// NewSender returns an SMTP sender, or a logging sender when no SMTP host
// is configured (local development).
func NewSender(cfg SMTPConfig, log logger.Logger) Sender {
	if cfg.Host == "" {
		log.Info("smtp host not configured, using logging email sender")
		return &LogSender{logger: log}
	}

	return &SMTPSender{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}

// Send assembles the MIME message and hands it to the SMTP server.
// smtp.SendMail carries its own dial/IO handling; no extra timeout is
// layered on top.
func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	raw, err := buildMessage(s.cfg.From, msg)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}
	if err := smtp.SendMail(s.addr, s.auth, s.cfg.Username, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
	}
	return nil
}

// LogSender logs outgoing mail instead of sending it.
type LogSender struct {
	logger logger.Logger
}

// Send logs the message details.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email (logged, not sent)",
		logger.String("to", msg.To),
		logger.String("subject", msg.Subject),
		logger.Int("html_bytes", len(msg.HTML)),
		logger.Int("attachments", len(msg.Attachments)))
	return nil
}
