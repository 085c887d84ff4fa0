package validation

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{"simple phrase", "message queue", "message-queue"},
		{"already slugged", "message-queue", "message-queue"},
		{"uppercase with underscores", "  MESSAGE_QUEUE  ", "message-queue"},
		{"mixed case", "Message Queue", "message-queue"},
		{"single word", "database", "database"},
		{"surrounding whitespace", "   cache   ", "cache"},
		{"punctuation run", "web -- framework!!", "web-framework"},
		{"digits preserved", "web 2.0 tools", "web-2-0-tools"},
		{"unicode stripped", "café systems", "caf-systems"},
		{"empty string", "", ""},
		{"only punctuation", "?!...", ""},
		{"tabs and newlines", "load\tbalancer\n", "load-balancer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.phrase)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	// Same input must always produce the same slug, and equivalent inputs
	// must collapse onto one key.
	inputs := []string{"Message Queue", "message-queue", "  MESSAGE_QUEUE  ", "message...queue"}
	want := "message-queue"

	for _, in := range inputs {
		first := Slugify(in)
		second := Slugify(in)
		if first != second {
			t.Errorf("Slugify(%q) not deterministic: %q vs %q", in, first, second)
		}
		if first != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, first, want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	phrases := []string{"Message Queue", "web 2.0 tools", "load balancer"}
	for _, p := range phrases {
		once := Slugify(p)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", p, once, twice)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"valid single word", "database", true},
		{"valid hyphenated", "message-queue", true},
		{"valid with digits", "web-2-0", true},
		{"empty string", "", false},
		{"uppercase", "Message-Queue", false},
		{"leading hyphen", "-queue", false},
		{"trailing hyphen", "queue-", false},
		{"double hyphen", "message--queue", false},
		{"underscore", "message_queue", false},
		{"space", "message queue", false},
		{"too long", string(make([]byte, 101)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSlug(tt.slug)
			if got != tt.want {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}
