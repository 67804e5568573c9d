// core/alphabet/alphabet.go
package alphabet

// Type tags the nucleic-acid alphabet of a decoded sequence.
type Type int

const (
	Unrecognized Type = iota
	DNA
	RNA
)

func (t Type) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	default:
		return "unrecognized"
	}
}

var dnaSet, rnaSet [256]bool

func init() {
	for _, c := range []byte("ACGTRYSWKMBDHVN") {
		dnaSet[c] = true
	}
	for _, c := range []byte("ACGURYSWKMBDHVN") {
		rnaSet[c] = true
	}
}

// Detect classifies seq as DNA, RNA or Unrecognized.
//
// A sequence drawn entirely from the DNA IUPAC set is DNA, one drawn
// entirely from the RNA IUPAC set is RNA. A sequence holding both T and U
// fails both memberships and is Unrecognized, as is anything containing a
// symbol outside the IUPAC alphabets.
func Detect(seq []byte) Type {
	dna, rna := true, true
	for _, c := range seq {
		if dna && !dnaSet[c] {
			dna = false
		}
		if rna && !rnaSet[c] {
			rna = false
		}
		if !dna && !rna {
			return Unrecognized
		}
	}
	if dna {
		return DNA
	}
	if rna {
		return RNA
	}
	return Unrecognized
}
