// core/primer/rc.go
package primer

import "hyperex-core/alphabet"

var dnaComp, rnaComp [256]byte

func init() {
	pairs := func(tab *[256]byte, ps string) {
		for i := 0; i < len(ps); i += 2 {
			tab[ps[i]], tab[ps[i+1]] = ps[i+1], ps[i]
		}
	}
	pairs(&dnaComp, "ATCGRYKMBVDH")
	pairs(&rnaComp, "AUCGRYKMBVDH")
}

// Complement maps a single symbol to its Watson-Crick complement under the
// given alphabet. Symbols outside the closed mapping (S, W, N, gaps, junk)
// pass through unchanged so corrupted input never aborts a run.
func Complement(b byte, a alphabet.Type) byte {
	var c byte
	switch a {
	case alphabet.RNA:
		c = rnaComp[b]
	default:
		c = dnaComp[b]
	}
	if c == 0 {
		return b
	}
	return c
}

// RevComp returns the reverse complement of seq under the given alphabet.
func RevComp(seq []byte, a alphabet.Type) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i], a)
	}
	return out
}
