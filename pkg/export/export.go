// Package export copies or saves the current document.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// ContentType is the media type the document is saved and served as
const ContentType = "text/html; charset=utf-8"

// Clipboard is a write-only system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through github.com/atotto/clipboard
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// CopyToClipboard writes the document to the clipboard
func CopyToClipboard(document string, cb Clipboard) error {
	if strings.TrimSpace(document) == "" {
		return models.NewEmptyDocumentError("copy")
	}
	if cb == nil {
		cb = SystemClipboard{}
	}
	if err := cb.WriteAll(document); err != nil {
		return models.NewError(models.ErrClipboardUnavailable, "failed to copy to clipboard", err)
	}
	return nil
}

// DownloadAsFile saves the document as dir/filename and returns the written path.
// The content goes to a temporary file first, which is closed before the rename
// and removed if anything fails, so no handle outlives the call.
func DownloadAsFile(document, dir, filename string) (string, error) {
	if strings.TrimSpace(document) == "" {
		return "", models.NewEmptyDocumentError("download")
	}

	target := TargetPath(dir, filename)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".gencomp-*.html.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", target, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", target, err)
	}
	committed = true

	return target, nil
}

// TargetPath resolves where DownloadAsFile would write
func TargetPath(dir, filename string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, NormalizeFilename(filename))
}

// Exists reports whether the download target already exists
func Exists(dir, filename string) bool {
	_, err := os.Stat(TargetPath(dir, filename))
	return err == nil
}

// NormalizeFilename applies the default name and the .html extension
func NormalizeFilename(filename string) string {
	name := SanitizeFilename(strings.TrimSpace(filename))
	if name == "" {
		return models.DefaultFilename
	}
	if filepath.Ext(name) == "" {
		name += ".html"
	}
	return name
}

// SanitizeFilename makes a filename safe for the filesystem
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		" ", "-",
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
