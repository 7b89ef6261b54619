// Package extract pulls the generated document out of a model reply.
package extract

import (
	"regexp"
	"strings"
)

// fencePattern matches the first fenced block: an opening marker with an
// optional language tag, the content, and the closing marker.
var fencePattern = regexp.MustCompile("```(?:\\w+)?\\n?([\\s\\S]*?)```")

// Extract returns the trimmed content of the first fenced block in raw.
// When raw has no fenced block the whole reply, trimmed, is the document.
func Extract(raw string) string {
	if m := fencePattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// HasFence reports whether raw contains a complete fenced block
func HasFence(raw string) bool {
	return fencePattern.MatchString(raw)
}
