package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// OutputTokenLimit is the reply budget of the default Gemini model
const OutputTokenLimit = 65536

var (
	wordPattern = regexp.MustCompile(`\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// EstimateTokens gives a rough token count for prompts and markup.
// Prose averages about 4 characters per token; markup is denser, so every
// tag adds a correction on top of the character estimate.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	charEstimate := len(text) / 4
	wordEstimate := int(float64(len(wordPattern.FindAllString(text, -1))) * 1.3)
	estimate := (charEstimate + wordEstimate) / 2

	for _, tag := range tagPattern.FindAllString(text, -1) {
		// tags tokenize at roughly 3 characters per token
		estimate += len(tag)/3 - len(tag)/4
	}

	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	switch {
	case tokens < 1000:
		return fmt.Sprintf("~%d tokens", tokens)
	case tokens < 10000:
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	default:
		return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
	}
}

// OutputBudgetStatus reports how much of the reply budget a document uses
func OutputBudgetStatus(tokens int) (percentage int, status string) {
	percentage = tokens * 100 / OutputTokenLimit

	switch {
	case percentage < 50:
		status = "good"
	case percentage < 80:
		status = "warning"
	default:
		status = "danger"
	}
	return percentage, status
}

// DocumentStats summarizes a document for the status line
type DocumentStats struct {
	Lines  int
	Bytes  int
	Tokens int
}

// StatsFor counts lines, bytes and estimated tokens
func StatsFor(doc string) DocumentStats {
	if doc == "" {
		return DocumentStats{}
	}
	return DocumentStats{
		Lines:  strings.Count(doc, "\n") + 1,
		Bytes:  len(doc),
		Tokens: EstimateTokens(doc),
	}
}

// FormatBytes renders a byte count as B, KB or MB
func FormatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// String renders the stats as "12 lines · 1.2 KB · ~300 tokens"
func (s DocumentStats) String() string {
	return fmt.Sprintf("%d lines · %s · %s", s.Lines, FormatBytes(s.Bytes), FormatTokenCount(s.Tokens))
}
