package cli

import (
	"fmt"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// GetTroubleshootingHint returns follow-up steps for a failure kind, or nil
func GetTroubleshootingHint(kind models.ErrorKind) []string {
	switch kind {
	case models.ErrConfig:
		return []string{
			"Export GEMINI_API_KEY (or GOOGLE_API_KEY) in your shell",
			"Create a key at https://aistudio.google.com/app/apikey",
		}
	case models.ErrInvalidCredentials:
		return []string{
			"Check that GEMINI_API_KEY holds the full key with no quotes or spaces",
			"Make sure the key has not been revoked",
		}
	case models.ErrQuotaExceeded:
		return []string{
			"Wait a minute and try again",
			"Check your quota and billing in Google AI Studio",
		}
	case models.ErrContentBlocked:
		return []string{
			"Rephrase the description; the request was stopped by safety filters",
		}
	case models.ErrEmptyResult:
		return []string{
			"Try again or make the description more specific",
		}
	case models.ErrClipboardUnavailable:
		return []string{
			"Install xclip, xsel or wl-clipboard on Linux",
			"Use --file or redirect stdout instead",
		}
	}
	return nil
}

// PrintHints writes the troubleshooting steps for err, if it has any
func PrintHints(err error) {
	hints := GetTroubleshootingHint(models.KindOf(err))
	if len(hints) == 0 || quiet {
		return
	}
	fmt.Fprintln(Stderr, "\nTroubleshooting:")
	for _, h := range hints {
		fmt.Fprintf(Stderr, "  - %s\n", h)
	}
}
