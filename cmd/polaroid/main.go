package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rickgorman/polaroid/internal/cli"
	"github.com/rickgorman/polaroid/internal/config"
	"github.com/rickgorman/polaroid/internal/ui"
)

const version = "1.0.0"

// Exit codes
const (
	exitOK      = 0
	exitInvalid = 1 // a path does not exist
	exitUsage   = 2 // bad flags or flag conflicts
)

func main() {
	ui.SetOutput(os.Stderr)
	os.Exit(run(os.Stdout, os.Args, config.Load()))
}

// run parses and validates osArgs and prints the resolved settings.
// Help and version text go to out; everything else goes through ui.
func run(out io.Writer, osArgs []string, cfg config.Config) int {
	prog := "polaroid"
	if len(osArgs) > 0 {
		prog = filepath.Base(osArgs[0])
	}

	args, err := cli.Parse(osArgs, cfg)
	if err != nil {
		switch errors.Cause(err) {
		case cli.ErrShowHelp:
			fmt.Fprint(out, cli.Usage(prog, cfg))
			return exitOK
		case cli.ErrShowVersion:
			fmt.Fprintf(out, "%s %s\n", prog, version)
			return exitOK
		}
		ui.Fail("%v", err)
		ui.Info("Run %s for usage information", ui.Bold(prog+" --help"))
		return exitUsage
	}

	paths, err := cli.ValidatePaths(args.ImagePaths)
	if err != nil {
		ui.Fail("%v", err)
		return exitInvalid
	}

	ui.Header()
	if args.UsedDefaultPath {
		ui.Warn("No image paths given, using $%s", config.PathEnv)
	}
	ui.Info("Settings: %s", args.Options.Describe())
	for _, path := range paths {
		kind := "file"
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			kind = "directory"
		}
		ui.DimMsg("%s (%s)", path, kind)
	}
	ui.Success("%d path(s) ready for bordering", len(paths))
	ui.Footer()

	return exitOK
}
