// core/primer/rc_test.go
package primer

import (
	"bytes"
	"testing"

	"hyperex-core/alphabet"
)

func complementString(s string, a alphabet.Type) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Complement(s[i], a)
	}
	return string(out)
}

func TestComplementDNA(t *testing.T) {
	got := complementString("ATCGATCGATCGATCGRYKBVDH", alphabet.DNA)
	want := "TAGCTAGCTAGCTAGCYRMVBHD"
	if got != want {
		t.Errorf("DNA complement = %q, want %q", got, want)
	}
}

func TestComplementRNA(t *testing.T) {
	got := complementString("AUCGAUCGAUCGAUCGRYKBVDHM", alphabet.RNA)
	want := "UAGCUAGCUAGCUAGCYRMVBHDK"
	if got != want {
		t.Errorf("RNA complement = %q, want %q", got, want)
	}
}

func TestComplementPassThrough(t *testing.T) {
	for _, b := range []byte{'N', 'S', 'W', '-', 'X', 'I'} {
		if got := Complement(b, alphabet.DNA); got != b {
			t.Errorf("Complement(%q) = %q, want pass-through", b, got)
		}
	}
	// T has no RNA complement and passes through under RNA.
	if got := Complement('T', alphabet.RNA); got != 'T' {
		t.Errorf("Complement('T', RNA) = %q, want 'T'", got)
	}
}

func TestRevComp(t *testing.T) {
	got := RevComp([]byte("GTGCCAGCMGCCGCGGTAA"), alphabet.DNA)
	if string(got) != "TTACCGCGGCKGCTGGCAC" {
		t.Errorf("RevComp = %q, want TTACCGCGGCKGCTGGCAC", got)
	}
}

func TestRevCompInvolution(t *testing.T) {
	for _, s := range []string{"ACGTRYSWKMBDHVN", "AGAGTTTGATCMTGGCTCAG", ""} {
		rc := RevComp([]byte(s), alphabet.DNA)
		back := RevComp(rc, alphabet.DNA)
		if s == "" {
			if back != nil {
				t.Errorf("RevComp(RevComp(%q)) = %q", s, back)
			}
			continue
		}
		if !bytes.Equal(back, []byte(s)) {
			t.Errorf("RevComp(RevComp(%q)) = %q, not an involution", s, back)
		}
	}
	rna := "ACGURYSWKMBDHVN"
	back := RevComp(RevComp([]byte(rna), alphabet.RNA), alphabet.RNA)
	if !bytes.Equal(back, []byte(rna)) {
		t.Errorf("RNA involution broken: %q", back)
	}
}
