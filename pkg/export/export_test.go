package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

type recordingClipboard struct {
	writes []string
	err    error
}

func (r *recordingClipboard) WriteAll(text string) error {
	if r.err != nil {
		return r.err
	}
	r.writes = append(r.writes, text)
	return nil
}

func TestCopyToClipboard(t *testing.T) {
	tests := []struct {
		name       string
		document   string
		cbErr      error
		wantKind   models.ErrorKind
		wantErr    bool
		wantWrites int
	}{
		{name: "copies document", document: "<div></div>", wantWrites: 1},
		{name: "empty document", document: "", wantErr: true, wantKind: models.ErrEmptyDocument},
		{name: "whitespace document", document: " \n ", wantErr: true, wantKind: models.ErrEmptyDocument},
		{name: "clipboard denied", document: "<div></div>", cbErr: errors.New("exec: xclip not found"), wantErr: true, wantKind: models.ErrClipboardUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &recordingClipboard{err: tt.cbErr}
			err := CopyToClipboard(tt.document, cb)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, models.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, cb.writes, tt.wantWrites)
			if tt.wantWrites == 1 {
				assert.Equal(t, tt.document, cb.writes[0])
			}
		})
	}
}

func TestDownloadAsFile(t *testing.T) {
	dir := t.TempDir()

	path, err := DownloadAsFile("<html><body>hi</body></html>", dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, models.DefaultFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>hi</body></html>", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should not be left behind")
}

func TestDownloadAsFileEmptyDocument(t *testing.T) {
	dir := t.TempDir()

	_, err := DownloadAsFile("   ", dir, "card.html")
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrEmptyDocument))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file should be created for an empty document")
}

func TestDownloadAsFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := DownloadAsFile("<p>one</p>", dir, "card")
	require.NoError(t, err)
	assert.True(t, Exists(dir, "card"))

	path, err := DownloadAsFile("<p>two</p>", dir, "card")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "card.html"), path)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "<p>two</p>", string(data))
}

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "GenUI-Code.html"},
		{"  ", "GenUI-Code.html"},
		{"pricing card", "pricing-card.html"},
		{"hero.htm", "hero.htm"},
		{"a/b:c", "a-b-c.html"},
	}
	for _, tt := range tests {
		if got := NormalizeFilename(tt.input); got != tt.expected {
			t.Errorf("NormalizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
