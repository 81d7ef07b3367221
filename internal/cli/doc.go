// Package cli provides command-line argument parsing for polaroid.
//
// This package turns raw arguments into a structured Args value in three
// steps:
//   - Parse: registers the flags and reads the positional image paths
//   - Sanitize: rejects conflicting flags and applies defaults
//   - ValidatePaths: checks that each path is an existing file or directory
//
// Supported flags (aliases in parentheses):
//   - --eq (--e): equal borders on every edge
//   - --no-border (--nb), --xs (--extra-small), --sm (--small),
//     --md (--medium), --lg (--large), --xl (--extra-large): border size,
//     at most one, medium by default
//   - --3-2 (--2-3), --5-4 (--4-5), --16-9 (--9-16): aspect ratio, at most
//     one, 1:1 by default, not allowed with --eq
//   - --instagram (--ig, --insta): optimise output for Instagram
//
// Example usage:
//
//	cfg := config.Load()
//	args, err := cli.Parse(os.Args, cfg)
//	if err != nil {
//	    if errors.Is(err, cli.ErrShowHelp) {
//	        fmt.Print(cli.Usage("polaroid", cfg))
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
//
//	paths, err := cli.ValidatePaths(args.ImagePaths)
//	if err != nil {
//	    log.Fatal(err)
//	}
package cli
