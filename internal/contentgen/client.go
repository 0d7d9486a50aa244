package contentgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CourageAllien/revshare/internal/domain"
	"github.com/CourageAllien/revshare/internal/utils"
)

const defaultEndpoint = "https://api.anthropic.com/v1/messages"

// ErrNoJSON is returned when the model reply contains no JSON document.
var ErrNoJSON = errors.New("no JSON object in model response")

// Client talks to the Anthropic Messages API. It is an optional
// collaborator: every caller treats a failure here as "continue without
// enrichment", never as a hard error.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// Options configures the content generator client.
type Options struct {
	APIKey   string
	Model    string
	Timeout  time.Duration
	Endpoint string // override for tests; defaults to the Anthropic API
}

// NewClient builds a content generator client. An empty API key returns a
// disabled client; check Enabled before calling.
func NewClient(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:   opts.APIKey,
		model:    opts.Model,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// complete sends one user prompt and returns the text of the reply.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !c.Enabled() {
		return "", errors.New("content generator not configured")
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("messages request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", fmt.Errorf("api error (status %d, %s): %s",
				resp.StatusCode, decoded.Error.Type, decoded.Error.Message)
		}
		return "", fmt.Errorf("api rejected request (status %d)", resp.StatusCode)
	}

	var text strings.Builder
	for _, block := range decoded.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.New("empty model response")
	}
	return text.String(), nil
}

// extractJSON pulls the outermost {...} block out of a model reply, which
// may wrap the JSON in prose or a code fence.
func extractJSON(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// generatedResearch is the research JSON shape the model is asked for.
// Unknown extra fields (sequencing plans, metrics tables in some generator
// versions) are dropped on decode.
type generatedResearch struct {
	domain.Research
	PersonalizedHook string `json:"personalizedHook"`
	ValueProposition string `json:"valueProposition"`
}

// Generate researches a company from its website and produces the full
// enrichment bundle: research, hook, value proposition and the playbook
// document.
func (c *Client) Generate(ctx context.Context, website, dealSize, challenge string) (*domain.Enrichment, error) {
	reply, err := c.complete(ctx, researchPrompt(website, dealSize, challenge), 4096)
	if err != nil {
		return nil, err
	}

	blob, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	var gen generatedResearch
	if err := json.Unmarshal([]byte(blob), &gen); err != nil {
		return nil, fmt.Errorf("failed to parse research JSON: %w", err)
	}

	research := gen.Research
	return &domain.Enrichment{
		Research:         &research,
		PersonalizedHook: gen.PersonalizedHook,
		ValueProposition: gen.ValueProposition,
		Playbook:         playbookHTML(&research, website, dealSize, challenge, gen.PersonalizedHook, gen.ValueProposition),
	}, nil
}

// ReminderCopy generates a personalized subject and body for one reminder
// email. Callers fall back to the static template on any error.
func (c *Client) ReminderCopy(ctx context.Context, kind domain.ReminderKind, name, date, slot string, research *domain.Research, hook string) (subject, body string, err error) {
	reply, err := c.complete(ctx, reminderPrompt(kind, name, date, slot, research, hook), 1024)
	if err != nil {
		return "", "", err
	}

	blob, err := extractJSON(reply)
	if err != nil {
		return "", "", err
	}

	var out struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return "", "", fmt.Errorf("failed to parse reminder copy JSON: %w", err)
	}
	if out.Subject == "" || out.Body == "" {
		return "", "", errors.New("incomplete reminder copy")
	}
	return out.Subject, out.Body, nil
}

// LeadMagnetContent is the personalized guide generated for a lead-magnet
// request.
type LeadMagnetContent struct {
	CompanyName        string              `json:"companyName"`
	CompanyDescription string              `json:"companyDescription"`
	Title              string              `json:"title"`
	Emoji              string              `json:"emoji"`
	PersonalizedIntro  string              `json:"personalizedIntro"`
	Sections           []LeadMagnetSection `json:"sections"`
	CallToAction       string              `json:"callToAction"`
}

// LeadMagnetSection is one section of the generated guide.
type LeadMagnetSection struct {
	Heading         string `json:"heading"`
	Content         string `json:"content"`
	PersonalizedTip string `json:"personalizedTip"`
}

// LeadMagnet generates the personalized guide for a visitor's company
// domain on the given topic.
func (c *Client) LeadMagnet(ctx context.Context, email, companyDomain, topicTitle, topicPrompt string) (*LeadMagnetContent, error) {
	reply, err := c.complete(ctx, leadMagnetPrompt(email, companyDomain, topicTitle, topicPrompt), 4096)
	if err != nil {
		return nil, err
	}

	blob, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	var content LeadMagnetContent
	if err := json.Unmarshal([]byte(blob), &content); err != nil {
		return nil, fmt.Errorf("failed to parse lead magnet JSON: %w", err)
	}
	return &content, nil
}
