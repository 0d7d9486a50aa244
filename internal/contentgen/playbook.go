package contentgen

import (
	"fmt"
	"html"
	"strings"

	"github.com/CourageAllien/revshare/internal/domain"
)

// playbookHTML renders the standalone playbook document attached to the
// confirmation email. Self-contained HTML so it opens cleanly from a mail
// client.
func playbookHTML(r *domain.Research, website, dealSize, challenge, hook, valueProp string) string {
	esc := html.EscapeString

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>RevShare Outbound Playbook</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #050505; color: #e4e4e7; max-width: 760px; margin: 0 auto; padding: 40px 24px; }
h1 { color: #ffffff; } h2 { color: #3b82f6; margin-top: 32px; }
.card { background: #111113; border: 1px solid #27272a; border-radius: 12px; padding: 20px; margin: 16px 0; }
.muted { color: #a1a1aa; } .tag { color: #10b981; font-size: 13px; }
ul { line-height: 1.8; }
</style>
</head>
<body>
`)
	fmt.Fprintf(&b, "<h1>Outbound Playbook: %s</h1>\n", esc(r.CompanyName))
	fmt.Fprintf(&b, `<p class="muted">Prepared for %s &middot; average deal size %s</p>`+"\n", esc(website), esc(dealSize))

	fmt.Fprintf(&b, "<h2>About Your Company</h2>\n<p>%s</p>\n", esc(r.CompanyDescription))
	if hook != "" {
		fmt.Fprintf(&b, `<div class="card"><p>%s</p></div>`+"\n", esc(hook))
	}
	if valueProp != "" {
		fmt.Fprintf(&b, "<h2>Why Revenue-Share Fits</h2>\n<p>%s</p>\n", esc(valueProp))
	}

	fmt.Fprintf(&b, "<h2>Your Stated Challenge</h2>\n<p class=\"muted\">%s</p>\n", esc(challenge))

	b.WriteString("<h2>Target Audience Pain Points</h2>\n<ul>\n")
	for _, p := range r.TargetAudience.PainPoints {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(p))
	}
	b.WriteString("</ul>\n<h2>Ideal Client Characteristics</h2>\n<ul>\n")
	for _, c := range r.TargetAudience.Characteristics {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(c))
	}
	b.WriteString("</ul>\n<h2>Technographic Signals</h2>\n<ul>\n")
	for _, s := range r.TechnographicSignals {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(s))
	}
	b.WriteString("</ul>\n<h2>Behavioral Indicators</h2>\n<ul>\n")
	for _, s := range r.BehavioralIndicators {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(s))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Sample Cold Emails</h2>\n")
	for i, e := range r.SampleEmails {
		fmt.Fprintf(&b, `<div class="card"><p class="tag">Email %d &middot; %s</p><p><strong>Subject:</strong> %s</p><p>%s</p></div>`+"\n",
			i+1, esc(e.Angle), esc(e.Subject), strings.ReplaceAll(esc(e.Body), "\n", "<br>"))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
