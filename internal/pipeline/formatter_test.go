package pipeline

import (
	"testing"

	"github.com/pauljaws/StackBot/internal/models"
)

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		name   string
		result models.RankedResult
		want   string
	}{
		{
			name: "all fields present",
			result: models.RankedResult{
				Name:       "Kafka",
				Popularity: 95,
				Function:   models.ResultFunction{Name: "Message Queue"},
				Stacks:     1200,
				OneLiner:   "Distributed, fault tolerant, high throughput pub-sub messaging system",
			},
			want: `Message Queue: the most popular tool right now is Kafka, used in 1200 stacks ("Distributed, fault tolerant, high throughput pub-sub messaging system").`,
		},
		{
			name: "no optional fields",
			result: models.RankedResult{
				Name:       "Redis",
				Popularity: 88,
				Function:   models.ResultFunction{Name: "In-Memory Databases"},
			},
			want: "In-Memory Databases: the most popular tool right now is Redis.",
		},
		{
			name: "stacks without one-liner",
			result: models.RankedResult{
				Name:       "nginx",
				Popularity: 90,
				Function:   models.ResultFunction{Name: "Web Servers"},
				Stacks:     5000,
			},
			want: "Web Servers: the most popular tool right now is nginx, used in 5000 stacks.",
		},
		{
			name: "one-liner without stacks",
			result: models.RankedResult{
				Name:       "PostgreSQL",
				Popularity: 93,
				Function:   models.ResultFunction{Name: "Databases"},
				OneLiner:   "A powerful, open source object-relational database system",
			},
			want: `Databases: the most popular tool right now is PostgreSQL ("A powerful, open source object-relational database system").`,
		},
		{
			name: "missing category",
			result: models.RankedResult{
				Name:       "Kafka",
				Popularity: 95,
			},
			want: "That category: the most popular tool right now is Kafka.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAnswer(tt.result)
			if got != tt.want {
				t.Errorf("FormatAnswer() = %q, want %q", got, tt.want)
			}
		})
	}
}
