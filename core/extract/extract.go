// core/extract/extract.go
package extract

import (
	"hyperex-core/alphabet"
	"hyperex-core/matcher"
	"hyperex-core/primer"
)

// DefaultMinLen is the record length at or below which a region may fall
// outside the sequence; shorter records get a one-shot length warning.
const DefaultMinLen = 1400

// Outcome tags the result of evaluating one primer pair against one record.
type Outcome int

const (
	Extracted Outcome = iota
	MissingForward
	MissingReverse
	MissingBoth
	Inverted
	AlphabetUnrecognized
)

// Result is the per-(record, pair) evaluation outcome. Start and End are
// 0-based inclusive bounds of the extraction, valid only for Extracted.
type Result struct {
	Outcome Outcome
	Label   string
	Start   int
	End     int
	FwdDist int
	RevDist int
}

// RecordReport carries the once-per-record checks run before any scanning.
type RecordReport struct {
	Alphabet alphabet.Type
	Short    bool
}

// Engine evaluates primer pairs against records under a mismatch budget.
// It holds no per-record state; records and pairs are independent units.
type Engine struct {
	MaxMM  int
	MinLen int
}

// New returns an Engine with the default minimum-length threshold.
func New(maxMM int) *Engine {
	return &Engine{MaxMM: maxMM, MinLen: DefaultMinLen}
}

// CheckRecord classifies the record's alphabet and flags short sequences.
func (e *Engine) CheckRecord(seq []byte) RecordReport {
	return RecordReport{
		Alphabet: alphabet.Detect(seq),
		Short:    len(seq) <= e.MinLen,
	}
}

// Evaluate runs the per-pair state machine: scan the forward primer and the
// reverse-complemented reverse primer independently, keep the earliest
// minimum-distance hit of each, and decide the extraction bounds.
func (e *Engine) Evaluate(seq []byte, alpha alphabet.Type, pair primer.Pair) Result {
	res := Result{Label: primer.Label(pair)}
	if alpha == alphabet.Unrecognized {
		res.Outcome = AlphabetUnrecognized
		return res
	}

	fwd := matcher.Compile([]byte(pair.Forward))
	rev := matcher.Compile(primer.RevComp([]byte(pair.Reverse), alpha))

	fBest, fOK := matcher.Best(fwd.Scan(seq, e.MaxMM))
	rBest, rOK := matcher.Best(rev.Scan(seq, e.MaxMM))

	switch {
	case fOK && rOK:
		// Substitution-only matching keeps the primer footprint fixed-width,
		// so the start is exactly end-len+1.
		start := fBest.End - fwd.Len() + 1
		if start > rBest.End {
			res.Outcome = Inverted
			return res
		}
		res.Outcome = Extracted
		res.Start = start
		res.End = rBest.End
		res.FwdDist = fBest.Dist
		res.RevDist = rBest.Dist
	case fOK:
		res.Outcome = MissingReverse
	case rOK:
		res.Outcome = MissingForward
	default:
		res.Outcome = MissingBoth
	}
	return res
}
