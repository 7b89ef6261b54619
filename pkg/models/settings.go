package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Generation GenerationSettings `yaml:"generation"`
	Output     OutputSettings     `yaml:"output"`
	Preview    PreviewSettings    `yaml:"preview"`
	UI         UISettings         `yaml:"ui"`
	Editor     EditorSettings     `yaml:"editor"`
	Logging    LoggingSettings    `yaml:"logging"`
}

// GenerationSettings controls calls to the text-generation service.
// The API key is deliberately absent: it is only read from the environment.
type GenerationSettings struct {
	Model     string        `yaml:"model"`
	Framework Framework     `yaml:"framework"`
	Timeout   time.Duration `yaml:"timeout"`
	BaseURL   string        `yaml:"base_url,omitempty"`
}

// OutputSettings controls file export
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
	Overwrite       string `yaml:"overwrite"` // "ask", "always" or "never"
}

// PreviewSettings controls the local preview server
type PreviewSettings struct {
	Addr        string `yaml:"addr"`
	OpenBrowser bool   `yaml:"open_browser"`
}

// UISettings controls UI preferences
type UISettings struct {
	StatusDuration time.Duration `yaml:"status_duration"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	Command string `yaml:"command"`
}

// LoggingSettings controls zap output
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

const (
	OverwriteAsk    = "ask"
	OverwriteAlways = "always"
	OverwriteNever  = "never"

	DefaultModel    = "gemini-2.5-flash"
	DefaultFilename = "GenUI-Code.html"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Generation: GenerationSettings{
			Model:     DefaultModel,
			Framework: DefaultFramework,
			Timeout:   120 * time.Second,
		},
		Output: OutputSettings{
			DefaultFilename: DefaultFilename,
			ExportPath:      "./",
			Overwrite:       OverwriteAsk,
		},
		Preview: PreviewSettings{
			Addr:        "127.0.0.1:0",
			OpenBrowser: true,
		},
		UI: UISettings{
			StatusDuration: 3 * time.Second,
		},
		Editor: EditorSettings{
			Command: "",
		},
		Logging: LoggingSettings{
			Level: "",
		},
	}
}
