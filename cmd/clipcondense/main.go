// Command clipcondense trims subtitled media down to the spans its
// subtitles cover, and exports subtitle-aligned media clips for spaced-
// repetition study. It parses flags via cobra/pflag and dispatches to the
// condense and srs subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/clipcondense/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "clipcondense: received interrupt, stopping")
		cancel()
	}()

	root := cli.NewRootCommand(version, commit)
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "clipcondense: %v\n", err)
		return 1
	}
	return 0
}
