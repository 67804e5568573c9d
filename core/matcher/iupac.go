// core/matcher/iupac.go
package matcher

// 4-bit base mask per IUPAC symbol: bit0=A bit1=C bit2=G bit3=T.
var iupacMask [256]byte

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('R', 1|4)
	set('Y', 2|8)
	set('S', 2|4)
	set('W', 1|8)
	set('K', 4|8)
	set('M', 1|2)
	set('B', 2|4|8)
	set('D', 1|4|8)
	set('H', 1|2|8)
	set('V', 1|2|4)
	set('N', 1|2|4|8)
}

// baseMatch reports whether subject symbol g satisfies pattern symbol p.
// A pattern symbol accepts every subject symbol whose expansion set is
// contained in its own (so N accepts any IUPAC code, V accepts A/C/G/M/R/S).
// Symbols outside the IUPAC table, on either side, match only themselves.
func baseMatch(g, p byte) bool {
	pm := iupacMask[p]
	if pm == 0 {
		return g == p
	}
	gm := iupacMask[g]
	if gm == 0 {
		return false
	}
	return gm&pm == gm
}
