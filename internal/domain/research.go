package domain

// Research is the structured company analysis produced by the content
// generator. The generator contract has grown extra fields across versions;
// anything beyond these core fields is ignored on decode.
type Research struct {
	CompanyName          string         `json:"companyName"`
	CompanyDescription   string         `json:"companyDescription"`
	TargetAudience       TargetAudience `json:"targetAudience"`
	TechnographicSignals []string       `json:"technographicSignals"`
	BehavioralIndicators []string       `json:"behavioralIndicators"`
	SampleEmails         []SampleEmail  `json:"sampleEmails"`
}

// TargetAudience describes who the researched company sells to.
type TargetAudience struct {
	PainPoints      []string `json:"painPoints"`
	Characteristics []string `json:"characteristics"`
}

// SampleEmail is one generated cold-email draft.
type SampleEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Angle   string `json:"angle"`
}

// Enrichment bundles everything the content generator attaches to a booking.
type Enrichment struct {
	Research         *Research
	PersonalizedHook string
	ValueProposition string
	Playbook         string // HTML document
}
