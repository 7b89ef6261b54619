package commands

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/export"
	"github.com/gencomp/gencomp-cli/pkg/genai"
	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/preview"
)

// Edges to the network, the clipboard, the browser and the terminal.
// Tests replace them.
var (
	newTextService = func(s *models.Settings) genai.TextService {
		return genai.NewGeminiService(
			genai.WithBaseURL(s.Generation.BaseURL),
			genai.WithTimeout(s.Generation.Timeout),
		)
	}

	clipboardWriter export.Clipboard = export.SystemClipboard{}

	openURL = preview.OpenBrowser

	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

func newClient(s *models.Settings) *genai.Client {
	return genai.NewClient(
		genai.WithService(newTextService(s)),
		genai.WithModel(s.Generation.Model),
		genai.WithLogger(logging.Named("genai")),
	)
}
