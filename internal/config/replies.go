package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Replies holds the canned reply texts the bot uses outside the pipeline.
// Operators can override them via a YAML file; phrasing is config, not code.
type Replies struct {
	// Fallback is sent on the chat channel whenever resolution fails.
	Fallback string `yaml:"fallback"`
	// Attachment is sent when an inbound message carries attachments
	// instead of text.
	Attachment string `yaml:"attachment"`
	// Greeting is used when the NLU returns no speech of its own.
	Greeting string `yaml:"greeting"`
}

// DefaultReplies returns the built-in reply texts.
func DefaultReplies() *Replies {
	return &Replies{
		Fallback:   "Sorry, I couldn't find a good match for that. Try asking about another type of tool.",
		Attachment: "Sorry, I can only handle text messages right now.",
		Greeting:   "Hi! Ask me something like \"what's the most popular message queue?\"",
	}
}

// LoadReplies loads reply-text overrides from a YAML file.
// Path is determined by REPLIES_FILE, defaulting to "replies.yaml".
// Returns the defaults without error if the file doesn't exist.
func LoadReplies() (*Replies, error) {
	path := getEnv("REPLIES_FILE", "replies.yaml")

	replies := DefaultReplies()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Overrides file is optional
			return replies, nil
		}
		return nil, err
	}

	var overrides Replies
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}

	if overrides.Fallback != "" {
		replies.Fallback = overrides.Fallback
	}
	if overrides.Attachment != "" {
		replies.Attachment = overrides.Attachment
	}
	if overrides.Greeting != "" {
		replies.Greeting = overrides.Greeting
	}

	return replies, nil
}
