// Package cli handles command-line argument parsing and validation.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/rickgorman/polaroid/internal/border"
	"github.com/rickgorman/polaroid/internal/config"
)

// Control-flow errors for flags that short-circuit a run.
var (
	ErrShowHelp    = errors.New("show_help")
	ErrShowVersion = errors.New("show_version")
)

// ErrMissingImagePaths is returned when no positional path was given and no
// default path is configured.
var ErrMissingImagePaths = errors.New("the following arguments are required: image_paths")

// Args represents parsed and sanitized command-line arguments.
type Args struct {
	// Paths as given, or the configured default path.
	ImagePaths []string
	// UsedDefaultPath is set when ImagePaths came from the configured default.
	UsedDefaultPath bool

	Options border.Options
}

// parser owns one flag set and the variables its flags write to.
type parser struct {
	fs *pflag.FlagSet

	equalBorders bool
	sizes        [sizeFlagCount]bool
	ratios       [ratioFlagCount]bool
	insta        bool
	version      bool
}

func newParser(prog string) *parser {
	p := &parser{
		fs: pflag.NewFlagSet(prog, pflag.ContinueOnError),
	}
	p.fs.SortFlags = false
	p.fs.SetOutput(io.Discard)
	p.fs.Usage = func() {}

	p.boolFlag(&p.equalBorders, "eq", []string{"e"}, "equal borders on every edge")
	for _, f := range SizeFlags {
		p.boolFlag(&p.sizes[f], f.Name(), f.Aliases(), f.Usage())
	}
	for _, f := range RatioFlags {
		p.boolFlag(&p.ratios[f], f.Name(), f.Aliases(), f.Usage())
	}
	p.boolFlag(&p.insta, "instagram", []string{"ig", "insta"}, "optimise output size for Instagram")
	p.boolFlag(&p.version, "version", nil, "print version and exit")

	return p
}

// boolFlag registers name and its aliases against the same variable.
// Aliases are hidden from the flag listing and named in the usage text instead.
func (p *parser) boolFlag(v *bool, name string, aliases []string, usage string) {
	if len(aliases) > 0 {
		alts := make([]string, len(aliases))
		for i, a := range aliases {
			alts[i] = "--" + a
		}
		usage = fmt.Sprintf("%s (also %s)", usage, strings.Join(alts, ", "))
	}
	p.fs.VarPF(switchValue{on: v}, name, "", usage).NoOptDefVal = bareFlag
	for _, a := range aliases {
		p.fs.VarPF(switchValue{on: v}, a, "", usage).NoOptDefVal = bareFlag
		_ = p.fs.MarkHidden(a)
	}
}

func (p *parser) flags() Flags {
	f := Flags{
		EqualBorders:   p.equalBorders,
		InstaOptimised: p.insta,
	}
	for _, sf := range SizeFlags {
		if p.sizes[sf] {
			f.Sizes = append(f.Sizes, sf)
		}
	}
	for _, rf := range RatioFlags {
		if p.ratios[rf] {
			f.Ratios = append(f.Ratios, rf)
		}
	}
	return f
}

// Parse parses command-line arguments into an Args struct.
//
// osArgs includes the program name. When no image path is given, cfg's
// default path is used; without one, at least one path is required.
// Flag conflicts are reported with the Sanitize errors.
func Parse(osArgs []string, cfg config.Config) (*Args, error) {
	prog := "polaroid"
	var rest []string
	if len(osArgs) > 0 {
		prog = filepath.Base(osArgs[0])
		rest = osArgs[1:]
	}

	p := newParser(prog)
	if err := p.fs.Parse(rest); err != nil {
		if err == pflag.ErrHelp {
			return nil, ErrShowHelp
		}
		return nil, errors.WithStack(err)
	}
	if p.version {
		return nil, ErrShowVersion
	}

	paths := p.fs.Args()
	usedDefault := false
	if len(paths) == 0 {
		if !cfg.HasDefaultPath() {
			return nil, errors.WithStack(ErrMissingImagePaths)
		}
		paths = []string{cfg.DefaultPath}
		usedDefault = true
	}

	flags := p.flags()
	edge, ratio, err := Sanitize(flags)
	if err != nil {
		return nil, err
	}

	opts := border.Options{
		EdgeSize:       border.Medium,
		AspectRatio:    ratio,
		EqualBorders:   flags.EqualBorders,
		InstaOptimised: flags.InstaOptimised,
	}
	if edge != nil {
		opts.EdgeSize = *edge
	}

	return &Args{
		ImagePaths:      paths,
		UsedDefaultPath: usedDefault,
		Options:         opts,
	}, nil
}

// Usage returns the help text for prog. The image path argument is shown as
// optional when cfg carries a default path.
func Usage(prog string, cfg config.Config) string {
	p := newParser(prog)

	positional := "image_paths [image_paths ...]"
	if cfg.HasDefaultPath() {
		positional = "[image_paths ...]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s [flags] %s\n\n", prog, positional)
	b.WriteString("Add polaroid-style borders to images.\n\n")
	b.WriteString("Arguments:\n")
	b.WriteString("  image_paths   image files or directories")
	if cfg.HasDefaultPath() {
		fmt.Fprintf(&b, " (default %s from $%s)", cfg.DefaultPath, config.PathEnv)
	}
	b.WriteString("\n\nFlags:\n")
	p.writeFlagUsages(&b)
	return b.String()
}

// writeFlagUsages lists the visible flags in registration order.
func (p *parser) writeFlagUsages(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	defer tw.Flush()
	p.fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		fmt.Fprintf(tw, "      --%s\t%s\n", f.Name, f.Usage)
	})
	fmt.Fprintf(tw, "  -h, --help\tshow this help and exit\n")
}
