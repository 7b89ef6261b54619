package extract

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty reply",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "  \n\t ",
			expected: "",
		},
		{
			name:     "fenced with language tag",
			input:    "```html\n<div class=\"card\">...</div>\n```",
			expected: `<div class="card">...</div>`,
		},
		{
			name:     "fenced without language tag",
			input:    "```\n<p>hi</p>\n```",
			expected: "<p>hi</p>",
		},
		{
			name:     "prose around the fence is dropped",
			input:    "Here is your component:\n\n```html\n<button>Go</button>\n```\n\nEnjoy!",
			expected: "<button>Go</button>",
		},
		{
			name:     "content is trimmed",
			input:    "```html\n\n   <main></main>   \n\n```",
			expected: "<main></main>",
		},
		{
			name:     "only the first of several fences",
			input:    "```html\n<a>first</a>\n```\ntext\n```css\nbody{}\n```",
			expected: "<a>first</a>",
		},
		{
			name:     "no fence falls back to the whole reply",
			input:    "  <!DOCTYPE html><html></html>\n",
			expected: "<!DOCTYPE html><html></html>",
		},
		{
			name:     "unterminated fence is treated as no fence",
			input:    "```html\n<div>",
			expected: "```html\n<div>",
		},
		{
			name:     "empty fence",
			input:    "```html\n```",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if got != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text reply",
		"```html\n<section>\n  <h1>Title</h1>\n</section>\n```",
		"intro\n```\n<div></div>\n```\noutro",
		"   padded   ",
	}

	for _, in := range inputs {
		once := Extract(in)
		twice := Extract(once)
		if once != twice {
			t.Errorf("Extract not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestHasFence(t *testing.T) {
	if !HasFence("```html\n<div></div>\n```") {
		t.Error("expected fence to be detected")
	}
	if HasFence("<div></div>") {
		t.Error("expected no fence")
	}
}
