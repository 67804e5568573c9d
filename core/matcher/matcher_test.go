// core/matcher/matcher_test.go
package matcher

import "testing"

func collect(h *Hits) []Hit {
	var out []Hit
	for {
		hit, ok := h.Next()
		if !ok {
			return out
		}
		out = append(out, hit)
	}
}

func TestScanExact(t *testing.T) {
	seq := []byte("ACGTACGTACGT")

	tests := []struct {
		name      string
		pattern   string
		maxMM     int
		wantCount int
		wantFirst Hit
	}{
		{"perfect match", "ACG", 0, 3, Hit{End: 2, Dist: 0}},
		{"one mismatch allowed", "AGG", 1, 3, Hit{End: 2, Dist: 1}},
		{"exceed mismatch threshold", "AGG", 0, 0, Hit{}},
		{"IUPAC degeneracy", "ACN", 0, 3, Hit{End: 2, Dist: 0}},
		{"no window fits", "ACGTACGTACGTACGT", 2, 0, Hit{}},
	}
	for _, tc := range tests {
		hits := collect(Compile([]byte(tc.pattern)).Scan(seq, tc.maxMM))
		if len(hits) != tc.wantCount {
			t.Errorf("%s: got %d hits, want %d", tc.name, len(hits), tc.wantCount)
			continue
		}
		if tc.wantCount > 0 && hits[0] != tc.wantFirst {
			t.Errorf("%s: first hit %+v, want %+v", tc.name, hits[0], tc.wantFirst)
		}
	}
}

// Budget 0 must behave exactly like ambiguity-expanded substring search.
func TestScanAmbiguityExpansion(t *testing.T) {
	subject := []byte("TTTTGTGCCAGCAGCCGCGGTAATTTT")
	pattern := []byte("GTGCCAGCMGCCGCGGTAA") // M expands to {A,C}

	hits := collect(Compile(pattern).Scan(subject, 0))
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	wantEnd := 4 + len(pattern) - 1
	if hits[0].End != wantEnd || hits[0].Dist != 0 {
		t.Errorf("hit = %+v, want end=%d dist=0", hits[0], wantEnd)
	}
}

func TestScanSubjectAmbiguitySubset(t *testing.T) {
	// Pattern N accepts any IUPAC code; pattern A rejects subject N.
	if hits := collect(Compile([]byte("N")).Scan([]byte("R"), 0)); len(hits) != 1 {
		t.Errorf("N vs R: got %d hits, want 1", len(hits))
	}
	if hits := collect(Compile([]byte("A")).Scan([]byte("N"), 0)); len(hits) != 0 {
		t.Errorf("A vs N: got %d hits, want 0", len(hits))
	}
	// Non-IUPAC pattern symbols match only themselves (inosine in 337R).
	if hits := collect(Compile([]byte("I")).Scan([]byte("I"), 0)); len(hits) != 1 {
		t.Errorf("I vs I: got %d hits, want 1", len(hits))
	}
	if hits := collect(Compile([]byte("I")).Scan([]byte("A"), 0)); len(hits) != 0 {
		t.Errorf("I vs A: got %d hits, want 0", len(hits))
	}
}

func TestBestEarliestMinimum(t *testing.T) {
	// Two zero-distance occurrences: the leftmost must win.
	subject := []byte("AACGTTTTACGTT")
	best, ok := Best(Compile([]byte("ACGT")).Scan(subject, 1))
	if !ok {
		t.Fatal("no best hit")
	}
	if best.End != 4 || best.Dist != 0 {
		t.Errorf("best = %+v, want end=4 dist=0", best)
	}

	// A later exact hit must displace an earlier one-mismatch hit.
	subject = []byte("AAGTTTTACGTT")
	best, ok = Best(Compile([]byte("ACGT")).Scan(subject, 1))
	if !ok {
		t.Fatal("no best hit")
	}
	if best.End != 10 || best.Dist != 0 {
		t.Errorf("best = %+v, want end=10 dist=0", best)
	}
}

func TestBestAbsent(t *testing.T) {
	if _, ok := Best(Compile([]byte("GGGG")).Scan([]byte("AAAAAAA"), 0)); ok {
		t.Error("expected no hit")
	}
}

// Identical inputs must produce identical hit streams.
func TestScanDeterminism(t *testing.T) {
	subject := []byte("ACGTNNACGTACGRYT")
	pattern := Compile([]byte("ACGT"))
	a := collect(pattern.Scan(subject, 2))
	b := collect(pattern.Scan(subject, 2))
	if len(a) != len(b) {
		t.Fatalf("stream lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("hit %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
