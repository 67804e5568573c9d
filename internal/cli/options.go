// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hyperex/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	File     string   // input FASTA path, "-" for stdin
	Forward  []string // forward primer literals (paired with Reverse)
	Reverse  []string
	Regions  []string // built-in region names or primer-list files
	Mismatch int
	Prefix   string
	Force    bool
	Quiet    bool

	ran bool
}

// New builds the root command, binding flags into opts.
func New(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hyperex [flags] [FILE]",
		Short: "Hypervariable region primer-based extractor",
		Long: `hyperex extracts named hypervariable sub-regions of rRNA sequences
using built-in or user-supplied degenerate primer pairs.

Input can be plain, gzip'd, bzip2'd or xz'd FASTA; with no FILE, or when
FILE is -, standard input is read.`,
		Example: `  # with built-in 16S region names
  hyperex --region v3v4 file.fa.xz

  # with custom primer sequences
  hyperex -p outfile -f ATCG -r TYAATG file.fa.bz2`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			if err := opts.validate(); err != nil {
				return err
			}
			opts.ran = true
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.Forward, "forward", "f", nil,
		"forward primer sequence, can contain IUPAC ambiguities (repeatable)")
	f.StringArrayVarP(&opts.Reverse, "reverse", "r", nil,
		"reverse primer sequence, can contain IUPAC ambiguities (repeatable)")
	f.StringArrayVar(&opts.Regions, "region", nil,
		"hypervariable region name or primer-list file (repeatable)")
	f.IntVarP(&opts.Mismatch, "mismatch", "m", 0,
		"number of allowed mismatches per primer")
	f.StringVarP(&opts.Prefix, "prefix", "p", "hyperex_out",
		"prefix for the output files")
	f.BoolVar(&opts.Force, "force", false, "overwrite existing output files")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "decrease program verbosity")

	cmd.MarkFlagsMutuallyExclusive("forward", "region")
	cmd.MarkFlagsMutuallyExclusive("reverse", "region")

	return cmd
}

func (o *Options) validate() error {
	switch {
	case len(o.Forward) > 0 && len(o.Reverse) == 0,
		len(o.Reverse) > 0 && len(o.Forward) == 0:
		return errors.New("--forward and --reverse must be supplied together")
	case len(o.Forward) != len(o.Reverse):
		return fmt.Errorf("got %d forward and %d reverse primers; counts must match",
			len(o.Forward), len(o.Reverse))
	case o.Mismatch < 0:
		return errors.New("--mismatch must be ≥ 0")
	case o.Prefix == "":
		return errors.New("--prefix must not be empty")
	}
	return nil
}

// Parse runs the command line through cobra. The bool result is false when
// nothing should run (help or version was printed).
func Parse(argv []string, stdout, stderr io.Writer) (Options, bool, error) {
	var opts Options
	cmd := New(&opts)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return opts, false, err
	}
	if opts.File == "" {
		opts.File = "-"
	}
	return opts, opts.ran, nil
}
