// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hyperex-core/alphabet"
	"hyperex-core/extract"
	"hyperex-core/fasta"
	"hyperex-core/primer"
	"hyperex/internal/cli"
	"hyperex/internal/logging"
	"hyperex/internal/output"
	"hyperex/internal/version"
)

// Exit codes: 0 ok, 1 runtime/I-O failure, 2 usage or configuration error,
// 130 interrupted.
const (
	exitOK     = 0
	exitFatal  = 1
	exitUsage  = 2
	exitSignal = 130
)

// Run is the plain entry point used by main.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, resolves the primer-pair list, validates the
// configuration, then streams records through the extraction engine.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	start := time.Now()

	opts, run, err := cli.Parse(argv, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	if !run {
		return exitOK // help or version printed
	}

	log, closeLog, err := logging.Setup(stderr, opts.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFatal
	}
	defer closeLog()

	pairs, err := resolvePairs(opts)
	if err != nil {
		log.Error(err)
		return exitUsage
	}

	// The budget must be checked against the effective pair list before any
	// record is read.
	if longest := primer.Longest(pairs); opts.Mismatch > longest {
		log.Errorf("allowed mismatches (%d) exceed the longest primer length (%d)",
			opts.Mismatch, longest)
		return exitUsage
	}

	if opts.File != "-" {
		if _, err := os.Stat(opts.File); err != nil {
			log.Error("No such file or directory. Is the path correct? Do you have permission to read the file?")
			return exitFatal
		}
	}

	faPath := opts.Prefix + ".fa"
	gffPath := opts.Prefix + ".gff"
	if !opts.Force {
		for _, p := range []string{faPath, gffPath} {
			if _, err := os.Stat(p); err == nil {
				log.Errorf("output file %s already exists; use --force to overwrite", p)
				return exitFatal
			}
		}
	}

	log.Infof("This is hyperex v%s", version.Version)
	log.Infof("Localtime is %s", time.Now().Format("15:04:05"))
	if opts.Mismatch != 0 {
		log.Warnf("You have allowed %d mismatch in the primer sequence", opts.Mismatch)
	}

	code := extractAll(ctx, log, opts, pairs, faPath, gffPath)
	if code != exitOK {
		return code
	}

	log.Info("Done getting hypervariable regions")
	log.Infof("Walltime: %s", time.Since(start).Round(time.Millisecond))
	return exitOK
}

// resolvePairs expands the primer-pair list from literal primers, region
// names (or primer-list files), or the full built-in catalogue.
func resolvePairs(opts cli.Options) ([]primer.Pair, error) {
	if len(opts.Forward) > 0 {
		pairs := make([]primer.Pair, len(opts.Forward))
		for i := range opts.Forward {
			pairs[i] = primer.Pair{
				Forward: strings.ToUpper(opts.Forward[i]),
				Reverse: strings.ToUpper(opts.Reverse[i]),
			}
		}
		return pairs, nil
	}
	if len(opts.Regions) > 0 {
		var pairs []primer.Pair
		for _, r := range opts.Regions {
			if p, ok := primer.FromRegion(r); ok {
				pairs = append(pairs, p)
				continue
			}
			// Not a built-in name: accept a two-column primer-list file.
			list, err := primer.LoadPairs(r)
			if err != nil {
				return nil, fmt.Errorf("region %q is neither a built-in name (%s) nor a readable primer list: %v",
					r, strings.Join(primer.Regions(), ", "), err)
			}
			pairs = append(pairs, list...)
		}
		return pairs, nil
	}
	return primer.DefaultPairs(), nil
}

func extractAll(ctx context.Context, log *logrus.Logger, opts cli.Options,
	pairs []primer.Pair, faPath, gffPath string) int {

	in, err := fasta.Open(opts.File)
	if err != nil {
		log.Errorf("cannot read %s: %v", opts.File, err)
		return exitFatal
	}
	defer func() { _ = in.Close() }()

	faOut, err := os.Create(faPath)
	if err != nil {
		log.Errorf("cannot create %s: %v", faPath, err)
		return exitFatal
	}
	defer func() { _ = faOut.Close() }()
	gffOut, err := os.Create(gffPath)
	if err != nil {
		log.Errorf("cannot create %s: %v", gffPath, err)
		return exitFatal
	}
	defer func() { _ = gffOut.Close() }()

	w, err := output.NewWriter(faOut, gffOut)
	if err != nil {
		log.Errorf("cannot write %s: %v", gffPath, err)
		return exitFatal
	}

	eng := extract.New(opts.Mismatch)
	rd := fasta.NewReader(in)
	for {
		select {
		case <-ctx.Done():
			return exitSignal
		default:
		}

		rec, ok := rd.Next()
		if !ok {
			break
		}

		rep := eng.CheckRecord(rec.Seq)
		switch rep.Alphabet {
		case alphabet.Unrecognized:
			log.Error("Sequence type is not recognized as DNA or RNA")
			continue
		default:
			log.Infof("Sequence type is %s", rep.Alphabet)
		}
		if rep.Short {
			log.Warnf("Sequence length is less than %d bp. We may not be able to find some regions", extract.DefaultMinLen)
		}

		for _, pair := range pairs {
			res := eng.Evaluate(rec.Seq, rep.Alphabet, pair)
			switch res.Outcome {
			case extract.Extracted:
				x := output.Extraction{
					RecordID: rec.ID,
					Label:    res.Label,
					Pair:     pair,
					Seq:      rec.Seq[res.Start : res.End+1],
					Start:    res.Start,
					End:      res.End,
				}
				if err := w.Write(x); err != nil {
					log.Error(err)
					return exitFatal
				}
			case extract.MissingForward:
				log.Warnf("Region %s not found because primer %s was not found in the sequence %s",
					res.Label, pair.Forward, rec.ID)
			case extract.MissingReverse:
				log.Warnf("Region %s not found because primer %s was not found in the sequence %s",
					res.Label, pair.Reverse, rec.ID)
			case extract.MissingBoth:
				log.Warnf("Region %s not found because primers %s, %s were not found in the sequence %s",
					res.Label, pair.Forward, pair.Reverse, rec.ID)
			case extract.Inverted:
				log.Warnf("Region %s not extracted because the reverse primer match precedes the forward primer in the sequence %s",
					res.Label, rec.ID)
			}
		}
	}
	if err := rd.Err(); err != nil {
		log.Errorf("reading %s: %v", opts.File, err)
		return exitFatal
	}

	log.Infof("Wrote %d region(s) to %s and %s", w.Count, faPath, gffPath)
	return exitOK
}
