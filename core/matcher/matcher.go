// core/matcher/matcher.go
package matcher

import "bytes"

// Hit is one reported alignment of a pattern against a subject: the 0-based
// inclusive end position of the window and its substitution count.
type Hit struct {
	End  int
	Dist int
}

// Pattern is a compiled IUPAC primer pattern.
type Pattern struct {
	seq         []byte
	unambiguous bool
}

// Compile prepares pattern for repeated scanning. The byte slice is copied.
func Compile(pattern []byte) *Pattern {
	p := &Pattern{seq: append([]byte(nil), pattern...), unambiguous: true}
	for _, c := range p.seq {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			p.unambiguous = false
			break
		}
	}
	return p
}

// Len returns the pattern length.
func (p *Pattern) Len() int { return len(p.seq) }

// Hits is a finite, non-restartable stream of matches in left-to-right
// subject order. Callers wanting the best hit must drain it once per scan.
type Hits struct {
	p     *Pattern
	seq   []byte
	maxMM int
	pos   int // next window start to examine
}

// Scan reports every window of subject that aligns with the pattern within
// maxMM substitutions, lazily and deterministically from left to right.
// An empty pattern, or a subject shorter than the pattern, yields no hits.
func (p *Pattern) Scan(subject []byte, maxMM int) *Hits {
	return &Hits{p: p, seq: subject, maxMM: maxMM}
}

// Next returns the next hit in scan order.
func (h *Hits) Next() (Hit, bool) {
	pl := len(h.p.seq)
	if pl == 0 {
		return Hit{}, false
	}

	// Exact fast path: jump scan with bytes.Index.
	if h.maxMM <= 0 && h.p.unambiguous {
		if h.pos > len(h.seq)-pl {
			return Hit{}, false
		}
		j := bytes.Index(h.seq[h.pos:], h.p.seq)
		if j < 0 {
			h.pos = len(h.seq)
			return Hit{}, false
		}
		pos := h.pos + j
		h.pos = pos + 1
		return Hit{End: pos + pl - 1, Dist: 0}, true
	}

	end := len(h.seq) - pl
window:
	for pos := h.pos; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if !baseMatch(h.seq[pos+j], h.p.seq[j]) {
				mm++
				if mm > h.maxMM {
					continue window
				}
			}
		}
		h.pos = pos + 1
		return Hit{End: pos + pl - 1, Dist: mm}, true
	}
	h.pos = end + 1
	return Hit{}, false
}

// Best drains the stream and returns the minimum-distance hit, breaking ties
// in favour of the earliest-discovered (leftmost) one.
func Best(h *Hits) (Hit, bool) {
	var best Hit
	found := false
	for {
		hit, ok := h.Next()
		if !ok {
			return best, found
		}
		if !found || hit.Dist < best.Dist {
			best, found = hit, true
		}
	}
}
