package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/depot/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts app.Options
	var showVersion bool

	flagSet := pflag.NewFlagSet("depot", pflag.ContinueOnError)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/depot/config.toml)")
	flagSet.StringVar(&opts.CatalogPath, "catalog", "", "program catalog TOML (overrides the config file)")
	flagSet.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/depot/prefs.toml)")
	flagSet.BoolVar(&opts.DryRun, "dry-run", false, "log downloads instead of opening them")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.SetOutput(os.Stderr)
	flagSet.Usage = func() { printHelp(flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "depot: %v\n", err)
		return 2
	}
	if showVersion {
		fmt.Println("depot", version)
		return 0
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "depot: unexpected argument: %s\n", rest[0])
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "depot: %v\n", err)
		return 1
	}
	return 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprint(os.Stderr, `depot: browse and download programs from a catalog.

Type to filter programs by name, move with the arrow keys and press enter
to open the selected program's file.

Usage:
  depot [flags]

Flags:
`)
	flagSet.PrintDefaults()
}
