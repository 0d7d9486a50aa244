// Package email renders the HTML email bodies sent by the booking flow and
// the reminder scheduler. Templates are embedded so the binary ships
// self-contained.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/CourageAllien/revshare/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func firstName(name string) string {
	if i := strings.IndexByte(strings.TrimSpace(name), ' '); i > 0 {
		return strings.TrimSpace(name)[:i]
	}
	return strings.TrimSpace(name)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Confirmation renders the booking confirmation sent to the requester.
func Confirmation(b *domain.Booking) (subject, html string, err error) {
	date := domain.FormatDate(b.Date)
	html, err = render("confirmation.html", map[string]any{
		"FirstName":   firstName(b.Name),
		"CompanyName": b.CompanyName(),
		"Hook":        b.PersonalizedHook,
		"Date":        date,
		"Time":        b.TimeSlot,
		"HasPlaybook": b.Playbook != "",
		"Year":        time.Now().Year(),
	})
	if err != nil {
		return "", "", err
	}
	subject = fmt.Sprintf("You're confirmed! Strategy call on %s", date)
	if b.Playbook != "" {
		subject += " + Your Custom Playbook"
	}
	return subject, html, nil
}

// OperatorNotification renders the new-booking alert for the operator inbox.
func OperatorNotification(b *domain.Booking) (subject, html string, err error) {
	data := map[string]any{
		"Name":        b.Name,
		"Email":       b.Email,
		"CompanyName": b.CompanyName(),
		"Website":     b.Website,
		"DealSize":    b.DealSize,
		"Challenge":   b.Challenge,
		"Date":        domain.FormatDate(b.Date),
		"Time":        b.TimeSlot,
		"HasPlaybook": b.Playbook != "",
	}
	if b.Research != nil {
		data["ResearchSummary"] = b.Research.CompanyDescription
		points := b.Research.TargetAudience.PainPoints
		if len(points) > 3 {
			points = points[:3]
		}
		data["PainPoints"] = strings.Join(points, ", ")
	}
	html, err = render("operator.html", data)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("New Booking: %s from %s", b.Name, b.CompanyName()), html, nil
}

var reminderMeta = map[domain.ReminderKind]struct {
	subject string
	label   string
	emoji   string
	body    string
}{
	domain.ReminderOneDay: {
		subject: "Tomorrow: Your strategy call with RevShare",
		label:   "Tomorrow",
		emoji:   "📅",
		body:    "Just a heads up that our strategy call is tomorrow. We'll dig into your pipeline, your ideal clients, and how a revenue-share model could work for you. Come with questions!",
	},
	domain.ReminderTwoHours: {
		subject: "In 2 hours: Strategy call with RevShare",
		label:   "In 2 Hours",
		emoji:   "⏰",
		body:    "Our strategy call starts in about two hours. Grab your case studies and your ideal client profile so we can make the most of the 15 minutes.",
	},
	domain.ReminderThirtyMin: {
		subject: "Starting in 30 mins! 🚀",
		label:   "In 30 Minutes",
		emoji:   "🚀",
		body:    "We're on in 30 minutes! Find a quiet spot, and we'll see you there.",
	},
}

// Reminder renders the static reminder email for the given kind.
// A personalized subject/body pair from the content generator can replace
// the canned copy; pass empty strings to use the defaults.
func Reminder(kind domain.ReminderKind, b *domain.Booking, subjectOverride, bodyOverride string) (subject, html string, err error) {
	meta, ok := reminderMeta[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown reminder kind %q", kind)
	}

	subject = meta.subject
	if subjectOverride != "" {
		subject = subjectOverride
	}
	body := meta.body
	if bodyOverride != "" {
		body = bodyOverride
	}

	html, err = render("reminder.html", map[string]any{
		"FirstName": firstName(b.Name),
		"Label":     meta.label,
		"Emoji":     meta.emoji,
		"Body":      body,
		"Date":      domain.FormatDate(b.Date),
		"Time":      b.TimeSlot,
	})
	if err != nil {
		return "", "", err
	}
	return subject, html, nil
}

// LeadMagnetData is the rendered content of a lead-magnet guide email.
type LeadMagnetData struct {
	CompanyName  string
	Title        string
	Emoji        string
	Intro        string
	Sections     []LeadMagnetSection
	CallToAction string
}

// LeadMagnetSection is one section of the guide email.
type LeadMagnetSection struct {
	Heading         string
	Content         string
	PersonalizedTip string
}

// LeadMagnet renders the personalized guide email.
func LeadMagnet(data LeadMagnetData) (subject, html string, err error) {
	html, err = render("leadmagnet.html", map[string]any{
		"CompanyName":  data.CompanyName,
		"Title":        data.Title,
		"Emoji":        data.Emoji,
		"Intro":        data.Intro,
		"Sections":     data.Sections,
		"CallToAction": data.CallToAction,
		"Year":         time.Now().Year(),
	})
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("%s %s - Personalized for %s", data.Emoji, data.Title, data.CompanyName), html, nil
}
