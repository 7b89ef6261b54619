package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/pkg/export"
	"github.com/gencomp/gencomp-cli/pkg/genai"
	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/utils"
)

type generateOptions struct {
	framework string
	file      string
	copy      bool
	output    string
}

// generateResult is what -o json and -o yaml print
type generateResult struct {
	Framework models.Framework `json:"framework" yaml:"framework"`
	Model     string           `json:"model" yaml:"model"`
	Document  string           `json:"document" yaml:"document"`
	File      string           `json:"file,omitempty" yaml:"file,omitempty"`
	Copied    bool             `json:"copied" yaml:"copied"`
	Lines     int              `json:"lines" yaml:"lines"`
	Bytes     int              `json:"bytes" yaml:"bytes"`
	Tokens    int              `json:"tokens" yaml:"tokens"`
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate <description>",
		Aliases: []string{"gen"},
		Short:   "Generate a component without opening the TUI",
		Long: `Generate a component from a description and write the HTML document to
stdout, a file or the clipboard.

With no --file or --copy the document goes to stdout. When stdout is not a
terminal it is always written there, so the command composes with pipes.

Examples:
  # Print to stdout
  gencomp generate "a pricing card with three tiers"

  # Pick a framework and save to a file
  gencomp generate "a login form" -w html-tailwind -f login.html

  # Copy to the clipboard
  gencomp generate "a sticky navbar" --copy

  # Print a result object
  gencomp generate "a footer" -o json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" {
				return cli.ValidateOutputFormat(opts.output)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.framework, "framework", "w", "", "Framework identifier (see 'gencomp frameworks')")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Save the document to this file")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the document to the clipboard")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml")

	return cmd
}

func runGenerate(cmd *cobra.Command, description string, opts *generateOptions) error {
	if err := cli.ValidateDescription(description); err != nil {
		return err
	}

	settings, err := requireSettings()
	if err != nil {
		return err
	}

	fw := opts.framework
	if fw == "" {
		fw = string(settings.Generation.Framework)
	}
	framework, err := cli.ValidateFramework(fw)
	if err != nil {
		return err
	}

	key, err := cmdCtx.APIKey()
	if err != nil {
		return err
	}

	client := newClient(settings)
	cli.PrintInfo("Generating %s component with %s...", framework.Label(), client.Model())

	result := client.Generate(cmd.Context(), models.GenerationRequest{
		Description: description,
		Framework:   framework,
	}, genai.Config{APIKey: key})
	if !result.OK() {
		return result.Err()
	}

	doc := result.Document()
	stats := utils.StatsFor(doc)
	out := generateResult{
		Framework: framework,
		Model:     client.Model(),
		Document:  doc,
		Lines:     stats.Lines,
		Bytes:     stats.Bytes,
		Tokens:    stats.Tokens,
	}

	if opts.file != "" {
		path, err := saveDocument(doc, opts.file, settings.Output.Overwrite)
		if err != nil {
			return err
		}
		out.File = path
		cli.PrintSuccess("File downloaded successfully! (%s, %s)", path, stats)
	}

	if opts.copy {
		if err := export.CopyToClipboard(doc, clipboardWriter); err != nil {
			return err
		}
		out.Copied = true
		cli.PrintSuccess("Code copied to clipboard")
	}

	w := cmd.OutOrStdout()
	switch cli.OutputFormat(opts.output) {
	case cli.FormatJSON, cli.FormatYAML:
		return cli.OutputResults(w, opts.output, out)
	case cli.FormatText:
	default:
		if (opts.file != "" || opts.copy) && isTerminal(w) {
			return nil
		}
	}

	if !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	_, err = fmt.Fprint(w, doc)
	return err
}

// saveDocument writes doc to target, honouring the overwrite policy
func saveDocument(doc, target, overwrite string) (string, error) {
	dir, name := filepath.Split(target)
	if export.Exists(dir, name) {
		path := export.TargetPath(dir, name)
		switch overwrite {
		case models.OverwriteNever:
			return "", fmt.Errorf("%s already exists (overwrite is set to never)", path)
		case models.OverwriteAsk:
			ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
			if err != nil {
				return "", fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				return "", errors.New("aborted: file was not overwritten")
			}
		}
	}

	path, err := export.DownloadAsFile(doc, dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path, nil
}
