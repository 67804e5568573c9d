// core/primer/primer.go
package primer

// Pair is one forward/reverse primer pair (both 5'→3' IUPAC literals).
// Pairs are built once before record iteration and read-only afterwards.
type Pair struct {
	Forward string
	Reverse string
}

// Longest returns the length of the longest primer across pairs.
func Longest(pairs []Pair) int {
	max := 0
	for _, p := range pairs {
		if len(p.Forward) > max {
			max = len(p.Forward)
		}
		if len(p.Reverse) > max {
			max = len(p.Reverse)
		}
	}
	return max
}
