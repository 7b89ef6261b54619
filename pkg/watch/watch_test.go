package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type changes struct {
	mu   sync.Mutex
	seen []string
}

func (c *changes) record(content string) {
	c.mu.Lock()
	c.seen = append(c.seen, content)
	c.mu.Unlock()
}

func (c *changes) last() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seen) == 0 {
		return "", 0
	}
	return c.seen[len(c.seen)-1], len(c.seen)
}

func startWatcher(t *testing.T, path string, c *changes) *FileWatcher {
	t.Helper()
	w, err := New(path, c.record, WithDebounce(20*time.Millisecond), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// give fsnotify a moment to register the directory
	time.Sleep(50 * time.Millisecond)
	return w
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.html"), nil)
	assert.Error(t, err)
}

func TestNewReadsInitialContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>v1</p>"), 0644))

	w, err := New(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>v1</p>", w.Content())
	assert.True(t, filepath.IsAbs(w.Path()))
}

func TestWriteTriggersChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>v1</p>"), 0644))

	c := &changes{}
	w := startWatcher(t, path, c)

	require.NoError(t, os.WriteFile(path, []byte("<p>v2</p>"), 0644))

	require.Eventually(t, func() bool {
		content, _ := c.last()
		return content == "<p>v2</p>"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "<p>v2</p>", w.Content())
}

func TestRenameSaveTriggersChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>v1</p>"), 0644))

	c := &changes{}
	startWatcher(t, path, c)

	tmp := filepath.Join(dir, ".page.html.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("<p>renamed</p>"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool {
		content, _ := c.last()
		return content == "<p>renamed</p>"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestOtherFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>v1</p>"), 0644))

	c := &changes{}
	startWatcher(t, path, c)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("x"), 0644))
	time.Sleep(150 * time.Millisecond)

	_, n := c.last()
	assert.Zero(t, n)
}

func TestUnchangedContentIsNotReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>same</p>"), 0644))

	c := &changes{}
	startWatcher(t, path, c)

	require.NoError(t, os.WriteFile(path, []byte("<p>same</p>"), 0644))
	time.Sleep(150 * time.Millisecond)

	_, n := c.last()
	assert.Zero(t, n)
}
