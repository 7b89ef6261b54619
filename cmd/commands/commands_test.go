package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/pkg/genai"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

const fencedReply = "Here is your component:\n```html\n<p>hi</p>\n```\nEnjoy!"

type stubService struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []genai.Call
}

func (s *stubService) GenerateText(_ context.Context, call genai.Call) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return s.reply, s.err
}

func (s *stubService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type stubClipboard struct {
	text string
}

func (c *stubClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// isolate runs the test in an empty directory with a known environment
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GENCOMP_LOG_LEVEL", "")
	return dir
}

func stubGemini(t *testing.T, svc *stubService) {
	t.Helper()
	prev := newTextService
	newTextService = func(*models.Settings) genai.TextService { return svc }
	t.Cleanup(func() { newTextService = prev })
}

func stubClipboardWriter(t *testing.T) *stubClipboard {
	t.Helper()
	cb := &stubClipboard{}
	prev := clipboardWriter
	clipboardWriter = cb
	t.Cleanup(func() { clipboardWriter = prev })
	return cb
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(ctx context.Context, stdin string, args ...string) result {
	var out, errOut bytes.Buffer

	prevErr, prevIn := cli.Stderr, cli.Stdin
	cli.Stderr = &errOut
	cli.Stdin = strings.NewReader(stdin)
	defer func() {
		cli.Stderr, cli.Stdin = prevErr, prevIn
		cli.SetGlobalFlags(false, false, false)
		cmdCtx = nil
	}()

	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)

	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func run(args ...string) result {
	return execute(context.Background(), "", args...)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	r := run("version")
	require.NoError(t, r.err)
	assert.Equal(t, "GenComp version test\n", r.stdout)
}

func TestFrameworksCommand(t *testing.T) {
	isolate(t)

	r := run("frameworks")
	require.NoError(t, r.err)
	for _, fw := range models.Frameworks() {
		assert.Contains(t, r.stdout, string(fw))
		assert.Contains(t, r.stdout, fw.Label())
	}

	r = run("frameworks", "-o", "json")
	require.NoError(t, r.err)
	var list []frameworkInfo
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &list))
	require.Len(t, list, len(models.Frameworks()))
	assert.True(t, list[0].Default)
	assert.Equal(t, models.DefaultFramework, list[0].ID)

	r = run("frameworks", "-o", "xml")
	assert.Error(t, r.err)
}

func TestInitCommand(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".gencomp", "config.yaml")

	r := run("init")
	require.NoError(t, r.err)
	assert.FileExists(t, path)
	assert.DirExists(t, filepath.Join(dir, ".gencomp", "logs"))
	assert.Contains(t, r.stderr, "Created")

	require.NoError(t, os.WriteFile(path, []byte("generation:\n  framework: html-bootstrap\n"), 0644))

	r = execute(context.Background(), "n\n", "init")
	require.NoError(t, r.err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "html-bootstrap")

	r = run("init", "--yes")
	require.NoError(t, r.err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(models.DefaultFramework))
}

func TestGenerateToStdout(t *testing.T) {
	isolate(t)
	svc := &stubService{reply: fencedReply}
	stubGemini(t, svc)

	r := run("generate", "a", "blue", "button", "-w", "html-tailwind")
	require.NoError(t, r.err)
	assert.Equal(t, "<p>hi</p>\n", r.stdout)

	require.Equal(t, 1, svc.callCount())
	assert.Equal(t, "test-key", svc.calls[0].APIKey)
	assert.Equal(t, models.DefaultModel, svc.calls[0].Model)
	assert.Contains(t, svc.calls[0].Prompt, "a blue button")
	assert.Contains(t, svc.calls[0].Prompt, string(models.FrameworkHTMLTailwind))
}

func TestGenerateQuietKeepsStderrClean(t *testing.T) {
	isolate(t)
	stubGemini(t, &stubService{reply: fencedReply})

	r := run("generate", "a card", "--quiet")
	require.NoError(t, r.err)
	assert.Empty(t, r.stderr)
	assert.Equal(t, "<p>hi</p>\n", r.stdout)
}

func TestGenerateStructuredOutput(t *testing.T) {
	isolate(t)
	stubGemini(t, &stubService{reply: fencedReply})

	r := run("generate", "a card", "-o", "json")
	require.NoError(t, r.err)

	var got generateResult
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, "<p>hi</p>", got.Document)
	assert.Equal(t, models.DefaultFramework, got.Framework)
	assert.Equal(t, 1, got.Lines)
	assert.False(t, got.Copied)

	r = run("generate", "a card", "-o", "yaml")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "document: <p>hi</p>")
}

func TestGenerateToFileAndClipboard(t *testing.T) {
	dir := isolate(t)
	stubGemini(t, &stubService{reply: fencedReply})
	cb := stubClipboardWriter(t)

	r := run("generate", "a card", "-f", "out/card", "--copy", "-o", "json")
	require.NoError(t, r.err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "card.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
	assert.Equal(t, "<p>hi</p>", cb.text)

	var got generateResult
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.True(t, got.Copied)
	assert.Equal(t, filepath.Join("out", "card.html"), got.File)
	assert.Contains(t, r.stderr, "Code copied to clipboard")
}

func TestGenerateOverwritePolicy(t *testing.T) {
	tests := []struct {
		name      string
		overwrite string
		stdin     string
		args      []string
		wantErr   bool
		wantDoc   bool
	}{
		{"never", models.OverwriteNever, "", nil, true, false},
		{"ask declined", models.OverwriteAsk, "n\n", nil, true, false},
		{"ask accepted", models.OverwriteAsk, "y\n", nil, false, true},
		{"ask with --yes", models.OverwriteAsk, "", []string{"--yes"}, false, true},
		{"always", models.OverwriteAlways, "", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			stubGemini(t, &stubService{reply: fencedReply})

			config := filepath.Join(dir, "gencomp.yaml")
			require.NoError(t, os.WriteFile(config, []byte("output:\n  overwrite: "+tt.overwrite+"\n"), 0644))
			target := filepath.Join(dir, "card.html")
			require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

			args := append([]string{"generate", "a card", "-f", "card.html", "--config", config}, tt.args...)
			r := execute(context.Background(), tt.stdin, args...)
			if tt.wantErr {
				assert.Error(t, r.err)
			} else {
				assert.NoError(t, r.err)
			}

			data, err := os.ReadFile(target)
			require.NoError(t, err)
			if tt.wantDoc {
				assert.Equal(t, "<p>hi</p>", string(data))
			} else {
				assert.Equal(t, "old", string(data))
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		noKey     bool
		reply     string
		svcErr    error
		wantKind  models.ErrorKind
		wantCalls int
	}{
		{"blank description", []string{"generate", "   "}, false, fencedReply, nil, models.ErrValidation, 0},
		{"unknown framework", []string{"generate", "a card", "-w", "react"}, false, fencedReply, nil, models.ErrValidation, 0},
		{"missing key", []string{"generate", "a card"}, true, fencedReply, nil, models.ErrConfig, 0},
		{"quota", []string{"generate", "a card"}, false, "", &genai.ServiceError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}, models.ErrQuotaExceeded, 1},
		{"bad key", []string{"generate", "a card"}, false, "", &genai.ServiceError{StatusCode: 400, Reason: "API_KEY_INVALID"}, models.ErrInvalidCredentials, 1},
		{"empty reply", []string{"generate", "a card"}, false, "   ", nil, models.ErrEmptyResult, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.noKey {
				t.Setenv("GEMINI_API_KEY", "")
			}
			svc := &stubService{reply: tt.reply, err: tt.svcErr}
			stubGemini(t, svc)

			r := run(tt.args...)
			require.Error(t, r.err)
			assert.Equal(t, tt.wantKind, models.KindOf(r.err))
			assert.Equal(t, tt.wantCalls, svc.callCount())
			assert.Empty(t, r.stdout)
		})
	}
}

func TestInvalidConfigIsReported(t *testing.T) {
	dir := isolate(t)
	stubGemini(t, &stubService{reply: fencedReply})

	config := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(config, []byte("generation:\n  framework: react\n"), 0644))

	r := run("generate", "a card", "--config", config)
	require.Error(t, r.err)
	assert.True(t, models.IsKind(r.err, models.ErrConfig))

	// commands that do not need settings still work
	r = run("version", "--config", config)
	assert.NoError(t, r.err)
}

func TestPreviewCommand(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "card.html")
	require.NoError(t, os.WriteFile(file, []byte("<p>served</p>"), 0644))

	opened := make(chan string, 1)
	prev := openURL
	openURL = func(url string) error {
		opened <- url
		return nil
	}
	t.Cleanup(func() { openURL = prev })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan result, 1)
	go func() {
		done <- execute(ctx, "", "preview", file, "--addr", "127.0.0.1:0")
	}()

	var url string
	select {
	case url = <-opened:
	case <-time.After(5 * time.Second):
		t.Fatal("preview server did not start")
	}

	resp, err := http.Get(url + "doc")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<p>served</p>", string(body))

	cancel()
	select {
	case r := <-done:
		assert.NoError(t, r.err)
	case <-time.After(5 * time.Second):
		t.Fatal("preview command did not stop")
	}
}

func TestPreviewMissingFile(t *testing.T) {
	isolate(t)
	r := run("preview", "missing.html")
	require.Error(t, r.err)
	assert.False(t, errors.Is(r.err, context.Canceled))
	assert.Contains(t, r.err.Error(), "does not exist")
}
