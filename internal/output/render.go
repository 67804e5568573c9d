// internal/output/render.go
package output

import (
	"fmt"
	"io"

	bioalpha "github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"hyperex-core/primer"
)

const (
	gffVersion = "##gff-version 3"
	gffSource  = "hyperex"
	gffType    = "region"
	faWidth    = 60
)

// Extraction is one successful region extraction ready for rendering.
// Start and End are 0-based inclusive bounds within the source record.
type Extraction struct {
	RecordID string
	Label    string
	Pair     primer.Pair
	Seq      []byte
	Start    int
	End      int
}

// Writer serializes extractions to the paired sequence and feature sinks.
// A record line and its feature line either both get written or the first
// failing write aborts the run.
type Writer struct {
	fa    *biofasta.Writer
	gff   io.Writer
	Count int
}

// NewWriter wraps the two sinks and emits the GFF version pragma.
func NewWriter(fa, gff io.Writer) (*Writer, error) {
	if _, err := fmt.Fprintln(gff, gffVersion); err != nil {
		return nil, err
	}
	return &Writer{fa: biofasta.NewWriter(fa, faWidth), gff: gff}, nil
}

// Write appends one FASTA record and one GFF3 feature line for x.
func (w *Writer) Write(x Extraction) error {
	s := linear.NewSeq(x.RecordID, bioalpha.BytesToLetters(x.Seq), bioalpha.DNA)
	s.Desc = describe(x)
	if _, err := w.fa.Write(s); err != nil {
		return fmt.Errorf("write %s record: %w", x.RecordID, err)
	}

	attrs := "."
	if x.Label != "" {
		attrs = "Note=" + x.Label
	}
	// GFF3 coordinates are 1-based inclusive.
	if _, err := fmt.Fprintf(w.gff, "%s\t%s\t%s\t%d\t%d\t.\t.\t.\t%s\n",
		x.RecordID, gffSource, gffType, x.Start+1, x.End+1, attrs); err != nil {
		return fmt.Errorf("write %s feature: %w", x.RecordID, err)
	}
	w.Count++
	return nil
}

func describe(x Extraction) string {
	if x.Label == "" {
		return fmt.Sprintf("forward=%s reverse=%s", x.Pair.Forward, x.Pair.Reverse)
	}
	return fmt.Sprintf("region=%s forward=%s reverse=%s", x.Label, x.Pair.Forward, x.Pair.Reverse)
}
