package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gencomp/gencomp-cli/pkg/utils"
)

// SourceView shows the generated document in a scrollable, wrapped viewport
type SourceView struct {
	viewport viewport.Model
	document string
	width    int
	height   int
}

// NewSourceView creates an empty source view
func NewSourceView() *SourceView {
	return &SourceView{
		viewport: viewport.New(80, 20), // resized by SetSize
	}
}

// SetSize sets the outer size; the heading takes two lines
func (v *SourceView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width - 2 // left and right padding
	v.viewport.Height = height - 2
	if v.viewport.Height < 1 {
		v.viewport.Height = 1
	}
	v.refresh()
}

// SetContent replaces the document and scrolls back to the top
func (v *SourceView) SetContent(document string) {
	v.document = document
	v.refresh()
	v.viewport.GotoTop()
}

// Document returns the document being shown
func (v *SourceView) Document() string {
	return v.document
}

func (v *SourceView) refresh() {
	// normalize carriage returns so the viewport counts lines correctly
	content := strings.ReplaceAll(v.document, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if v.viewport.Width > 0 {
		content = wordwrap.String(content, v.viewport.Width)
	}
	v.viewport.SetContent(content)
}

// Update forwards scroll keys to the viewport
func (v *SourceView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the viewport is scrolled
func (v *SourceView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// View renders the heading with a token badge above the viewport
func (v *SourceView) View(title string, active bool) string {
	tokens := utils.EstimateTokens(v.document)
	badge := GetTokenBadgeStyle(tokens).Render(utils.FormatTokenCount(tokens))

	var s strings.Builder
	s.WriteString(renderHeading(title, badge, v.width, active))
	s.WriteString("\n\n")
	s.WriteString(ContentPaddingStyle.Render(v.viewport.View()))
	return s.String()
}
