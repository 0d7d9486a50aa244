package contentgen

import (
	"fmt"
	"strings"

	"github.com/CourageAllien/revshare/internal/domain"
)

func researchPrompt(website, dealSize, challenge string) string {
	var b strings.Builder
	b.WriteString(`You are an expert B2B sales strategist and cold email copywriter. A potential client has booked a call with RevShare, a company that handles the entire sales process (outreach, meeting prep, follow-ups) for B2B consultants and takes 15-30% of lifetime client revenue.

Here's what we know about them:
`)
	fmt.Fprintf(&b, "- Company Website: %s\n", website)
	fmt.Fprintf(&b, "- Average Deal Size: %s\n", dealSize)
	fmt.Fprintf(&b, "- Their Biggest Lead Generation Challenge: %s\n", challenge)
	b.WriteString(`
Based on the website URL, infer what the company likely does. Then provide a comprehensive analysis.

Respond in this exact JSON format:
{
  "companyName": "inferred company name from website",
  "companyDescription": "brief description of what the company does based on the website domain",
  "targetAudience": {
    "painPoints": ["pain point 1", "pain point 2", "pain point 3", "pain point 4", "pain point 5"],
    "characteristics": ["characteristic 1", "characteristic 2", "characteristic 3", "characteristic 4"]
  },
  "technographicSignals": ["signal 1", "signal 2", "signal 3", "signal 4"],
  "behavioralIndicators": ["indicator 1", "indicator 2", "indicator 3", "indicator 4"],
  "sampleEmails": [
    {"subject": "short 2-3 word subject", "body": "full email body - personalized, conversational, under 100 words", "angle": "what angle this email uses"}
  ],
  "personalizedHook": "A compelling one-liner about how RevShare can specifically help THIS company based on their challenge",
  "valueProposition": "2-3 sentences explaining specifically how RevShare's model would benefit them given their deal size and challenges"
}

Provide exactly 5 sample emails. Keep emails under 100 words, lead with research/relevance, use a conversational non-salesy tone, include a soft CTA, and make each email use a different angle (standard personalized, poke-the-bear, value-first, creative ideas, short and direct). The emails should be written as if RevShare is reaching out to THEIR ideal clients.`)
	return b.String()
}

func reminderPrompt(kind domain.ReminderKind, name, date, slot string, research *domain.Research, hook string) string {
	var when string
	switch kind {
	case domain.ReminderOneDay:
		when = "tomorrow"
	case domain.ReminderTwoHours:
		when = "in two hours"
	case domain.ReminderThirtyMin:
		when = "in thirty minutes"
	}

	var b strings.Builder
	b.WriteString("You are writing a reminder email for a booked strategy call. The email should be warm, personalized, and build excitement for the call.\n\n")
	fmt.Fprintf(&b, "The call is %s: %s at %s with %s.\n", when, date, slot, name)
	if research != nil {
		fmt.Fprintf(&b, "Their company: %s - %s\n", research.CompanyName, research.CompanyDescription)
	}
	if hook != "" {
		fmt.Fprintf(&b, "Personalized hook from our research: %s\n", hook)
	}
	b.WriteString(`
Respond in this exact JSON format:
{"subject": "short subject line", "body": "email body, 3-5 sentences, plain text"}`)
	return b.String()
}

func leadMagnetPrompt(email, companyDomain, topicTitle, topicPrompt string) string {
	var b strings.Builder
	b.WriteString("You are an expert B2B sales strategist for RevShare, a company that handles the entire sales process (outreach, meeting prep, follow-ups) for B2B consultants and takes 15-30% of lifetime client revenue.\n\n")
	fmt.Fprintf(&b, "Someone just submitted their email to get a free guide. Their email is: %s\n", email)
	fmt.Fprintf(&b, "Their company domain is: %s (website: https://%s)\n\n", companyDomain, companyDomain)
	fmt.Fprintf(&b, "Today's guide topic is %q: write about %s.\n", topicTitle, topicPrompt)
	b.WriteString(`
Infer what their company does from the domain and personalize every section to their likely business.

Respond in this exact JSON format:
{
  "companyName": "inferred company name",
  "companyDescription": "one sentence on what they likely do",
  "title": "the guide title",
  "emoji": "one emoji for the guide",
  "personalizedIntro": "2-3 sentences addressed to them about why this topic matters for their business",
  "sections": [
    {"heading": "section heading", "content": "2-4 sentences of substance", "personalizedTip": "one sentence applying it to their company"}
  ],
  "callToAction": "2 sentences inviting them to book a strategy call"
}

Provide 5 sections.`)
	return b.String()
}
