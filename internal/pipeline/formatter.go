package pipeline

import (
	"fmt"
	"strings"

	"github.com/pauljaws/StackBot/internal/models"
)

// FormatAnswer renders a selected result into a natural-language reply.
// It always names the category and the tool; adoption count and testimonial
// are appended only when present.
func FormatAnswer(result models.RankedResult) string {
	category := result.Function.Name
	if category == "" {
		category = "That category"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: the most popular tool right now is %s", category, result.Name)

	if result.Stacks > 0 {
		fmt.Fprintf(&b, ", used in %d stacks", result.Stacks)
	}
	if result.OneLiner != "" {
		fmt.Fprintf(&b, " (%q)", result.OneLiner)
	}
	b.WriteString(".")

	return b.String()
}
