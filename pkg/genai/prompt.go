package genai

import (
	"fmt"
	"strings"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

const promptTemplate = `You are an experienced programmer with expertise in web development and UI/UX design. You create modern, animated, and fully responsive UI components. You are highly skilled in HTML, CSS, Tailwind CSS, Bootstrap and JavaScript.

Now, generate a UI component for: %s
Framework to use: %s

Requirements:
- The code must be clean, well-structured, and easy to understand.
- Optimize for SEO where applicable.
- Focus on creating a modern, animated, and responsive UI design.
- Include high-quality hover effects, shadows, animations, colors, and typography.
- Return ONLY the code, formatted properly in a single Markdown fenced code block.
- Do NOT include explanations, text, comments, or anything else besides the code.
- Give the whole code in a single, complete, self-contained HTML file.
`

// BuildPrompt embeds the description and framework into the instruction prompt
func BuildPrompt(req models.GenerationRequest) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(req.Description), req.Framework)
}
