package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gencomp/gencomp-cli/cmd/commands"
	"github.com/gencomp/gencomp-cli/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		cli.PrintError("%v", err)
		cli.PrintHints(err)
		stop()
		os.Exit(1)
	}
}
