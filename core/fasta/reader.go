// core/fasta/reader.go
package fasta

import (
	"bytes"
	"io"

	bioalpha "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one decoded sequence record.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Reader yields Records from a FASTA stream, one at a time. It is a lazy,
// finite source; restarting requires reopening the underlying stream.
type Reader struct {
	sc *seqio.Scanner
}

// NewReader wraps r (already decompressed) in a FASTA record source.
func NewReader(r io.Reader) *Reader {
	t := linear.NewSeq("", nil, bioalpha.DNA)
	return &Reader{sc: seqio.NewScanner(biofasta.NewReader(r, t))}
}

// Next returns the next record, or false at end of stream.
func (r *Reader) Next() (Record, bool) {
	if !r.sc.Next() {
		return Record{}, false
	}
	s := r.sc.Seq().(*linear.Seq)
	// Downstream tables are uppercase-only; fold soft-masked residues.
	return Record{
		ID:   s.ID,
		Desc: s.Desc,
		Seq:  bytes.ToUpper(bioalpha.LettersToBytes(s.Seq)),
	}, true
}

// Err reports the first scan error, if any, after Next returns false.
func (r *Reader) Err() error {
	return r.sc.Error()
}
