package leadmagnet

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopicsYAML []byte

// Topic is one entry in the rotating guide catalogue.
type Topic struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Emoji  string `yaml:"emoji" json:"emoji"`
	Prompt string `yaml:"prompt" json:"prompt"`
}

type topicsFile struct {
	Topics []Topic `yaml:"topics"`
}

// LoadTopics parses the topic catalogue. An empty path loads the built-in
// catalogue; otherwise the file at path replaces it wholesale.
func LoadTopics(path string) ([]Topic, error) {
	data := defaultTopicsYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read topics file: %w", err)
		}
		data = b
	}

	var parsed topicsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse topics yaml: %w", err)
	}
	if len(parsed.Topics) == 0 {
		return nil, fmt.Errorf("topics file contains no topics")
	}
	for i, t := range parsed.Topics {
		if t.ID == "" || t.Title == "" || t.Prompt == "" {
			return nil, fmt.Errorf("topic %d is missing id, title or prompt", i)
		}
	}
	return parsed.Topics, nil
}

// TopicFor picks the topic for a given day. The catalogue rotates daily so
// repeat visitors see fresh material through a full cycle.
func TopicFor(topics []Topic, now time.Time) Topic {
	return topics[now.YearDay()%len(topics)]
}
