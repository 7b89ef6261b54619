package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// editorFinishedMsg reports the end of an external editing session
type editorFinishedMsg struct {
	path string
	err  error
}

// parseEditor splits the EDITOR environment variable into command and arguments
// This allows support for editors with flags like "code --wait" or "zed -w"
func parseEditor(editor string) (string, []string) {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

// createEditorCommand creates an exec.Command with proper argument handling
func createEditorCommand(editor string, filepath string) *exec.Cmd {
	cmd, args := parseEditor(editor)
	return exec.Command(cmd, append(args, filepath)...)
}

// resolveEditor prefers the configured command over $EDITOR
func resolveEditor(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	return os.Getenv("EDITOR")
}

// writeEditorFile puts the document in a temp file for the external editor
func writeEditorFile(document string) (string, error) {
	f, err := os.CreateTemp("", "gencomp-*.html")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.WriteString(document); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Name(), nil
}

// openInEditor suspends the program and runs the editor on a copy of document
func openInEditor(editor, document string) (tea.Cmd, error) {
	if strings.TrimSpace(editor) == "" {
		return nil, fmt.Errorf("$EDITOR environment variable not set")
	}

	path, err := writeEditorFile(document)
	if err != nil {
		return nil, err
	}

	cmd := createEditorCommand(editor, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	}), nil
}

// readEditorResult reads back the edited copy and removes it
func readEditorResult(msg editorFinishedMsg) (string, error) {
	defer os.Remove(msg.path)
	if msg.err != nil {
		return "", fmt.Errorf("editor exited with error: %w", msg.err)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}
