package commands

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/preview"
	"github.com/gencomp/gencomp-cli/pkg/watch"
)

type previewOptions struct {
	addr string
	open bool
}

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Serve an HTML file in the sandboxed preview with live reload",
		Long: `Serve an HTML file through the same sandboxed preview page the TUI uses.
The page reloads whenever the file is saved. Press Ctrl+C to stop.

Examples:
  gencomp preview GenUI-Code.html
  gencomp preview card.html --addr 127.0.0.1:8090 --open=false`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateFilePath(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from settings)")
	cmd.Flags().BoolVar(&opts.open, "open", true, "Open the page in a browser")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, opts *previewOptions) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	addr := settings.Preview.Addr
	if cmd.Flags().Changed("addr") {
		addr = opts.addr
	}
	open := settings.Preview.OpenBrowser
	if cmd.Flags().Changed("open") {
		open = opts.open
	}

	log := logging.Named("preview")
	name := filepath.Base(path)
	srv := preview.New(preview.WithFilename(name), preview.WithLogger(log))

	var epoch atomic.Uint64
	w, err := watch.New(path, func(content string) {
		e := epoch.Add(1)
		srv.Publish(content, e)
		cli.PrintInfo("Reloaded %s (render #%d)", name, e)
	}, watch.WithLogger(log))
	if err != nil {
		return err
	}
	srv.Publish(w.Content(), 0)

	if err := srv.Start(addr); err != nil {
		return err
	}
	defer srv.Close()

	cli.PrintSuccess("Serving %s at %s", name, srv.URL())
	cli.PrintInfo("Fullscreen: %s", srv.FullscreenURL())
	cli.PrintInfo("Press Ctrl+C to stop")

	if open {
		if err := openURL(srv.URL()); err != nil {
			cli.PrintWarning("Could not open a browser: %v", err)
		}
	}

	if err := w.Run(cmd.Context()); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	return nil
}
