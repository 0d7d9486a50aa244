package leadmagnet

import "strings"

// personalEmailDomains are consumer mail providers. Guides are only sent to
// company addresses, since the content is personalized to the company domain.
var personalEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"mac.com":        {},
	"aol.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"zoho.com":       {},
	"yandex.com":     {},
	"mail.com":       {},
	"gmx.com":        {},
	"tutanota.com":   {},
	"fastmail.com":   {},
	"hey.com":        {},
}

// ExtractDomain returns the lowercased domain part of an email address, or
// "" when the address has no domain.
func ExtractDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return ""
	}
	return strings.ToLower(domain)
}

// IsPersonalEmail reports whether the address belongs to a consumer mail
// provider. Addresses without a domain count as personal.
func IsPersonalEmail(email string) bool {
	domain := ExtractDomain(email)
	if domain == "" {
		return true
	}
	_, personal := personalEmailDomains[domain]
	return personal
}
