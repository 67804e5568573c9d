// core/primer/catalogue.go
package primer

// Built-in 16S rRNA primer tables. Read-only after init.

var forwardPrimers = map[string]string{
	"27F":    "AGAGTTTGATCMTGGCTCAG",
	"341F":   "CCTACGGGNGGCWGCAG",
	"515F":   "GTGCCAGCMGCCGCGGTAA",
	"515F-Y": "GTGYCAGCMGCCGCGGTAA",
	"799F":   "AACMGGATTAGATACCCKG",
	"928F":   "TAAAACTYAAAKGAATTGACGGGG",
	"1100F":  "YAACGAGCGCAACCC",
}

var reversePrimers = map[string]string{
	"337R":     "CYIACTGCTGCCTCCCGTAG",
	"534R":     "ATTACCGCGGCTGCTGG",
	"805R":     "GACTACHVGGGTATCTAATCC",
	"806R":     "GGACTACHVGGGTWTCTAAT",
	"909-928R": "CCCCGYCAATTCMTTTRAGT",
	"926Rb":    "CCGTCAATTYMTTTRAGT",
	"1193R":    "ACGTCATCCCCACCTTCC",
	"1492Rmod": "TACGGYTACCTTGTTAYGACTT",
}

// primerRegion maps a primer literal to the hypervariable region code it
// flanks. Primers absent from this map contribute an empty code.
var primerRegion = map[string]string{
	"AGAGTTTGATCMTGGCTCAG":     "v1",
	"CYIACTGCTGCCTCCCGTAG":     "v2",
	"CCTACGGGNGGCWGCAG":        "v3",
	"ATTACCGCGGCTGCTGG":        "v3",
	"GTGCCAGCMGCCGCGGTAA":      "v4",
	"GTGYCAGCMGCCGCGGTAA":      "v4",
	"GACTACHVGGGTATCTAATCC":    "v4",
	"GGACTACHVGGGTWTCTAAT":     "v4",
	"AACMGGATTAGATACCCKG":      "v5",
	"CCGTCAATTYMTTTRAGT":       "v5",
	"CCCCGYCAATTCMTTTRAGT":     "v5",
	"TAAAACTYAAAKGAATTGACGGGG": "v6",
	"YAACGAGCGCAACCC":          "v7",
	"ACGTCATCCCCACCTTCC":       "v7",
	"TACGGYTACCTTGTTAYGACTT":   "v9",
}

// regionPairs keys the built-in region names to their flanking primer pairs.
var regionPairs = map[string]Pair{
	"v1v2": {forwardPrimers["27F"], reversePrimers["337R"]},
	"v1v3": {forwardPrimers["27F"], reversePrimers["534R"]},
	"v1v9": {forwardPrimers["27F"], reversePrimers["1492Rmod"]},
	"v3v4": {forwardPrimers["341F"], reversePrimers["805R"]},
	"v3v5": {forwardPrimers["341F"], reversePrimers["926Rb"]},
	"v4":   {forwardPrimers["515F"], reversePrimers["806R"]},
	"v4v5": {forwardPrimers["515F-Y"], reversePrimers["909-928R"]},
	"v5v7": {forwardPrimers["799F"], reversePrimers["1193R"]},
	"v6v9": {forwardPrimers["928F"], reversePrimers["1492Rmod"]},
	"v7v9": {forwardPrimers["1100F"], reversePrimers["1492Rmod"]},
}

// regionOrder fixes the catalogue iteration order for DefaultPairs.
var regionOrder = []string{
	"v1v2", "v1v3", "v1v9", "v3v4", "v3v5", "v4", "v4v5", "v5v7", "v6v9", "v7v9",
}

// Regions lists the built-in region names in catalogue order.
func Regions() []string {
	out := make([]string, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// FromRegion resolves a built-in region name to its primer pair.
func FromRegion(name string) (Pair, bool) {
	p, ok := regionPairs[name]
	return p, ok
}

// DefaultPairs expands the full built-in catalogue, used when the caller
// selects neither explicit primers nor explicit regions.
func DefaultPairs() []Pair {
	out := make([]Pair, 0, len(regionOrder))
	for _, r := range regionOrder {
		out = append(out, regionPairs[r])
	}
	return out
}

// Label derives the textual region label for a pair: the region code of each
// side concatenated, collapsed to a single code when both sides map to the
// same code. Sides with no known region contribute nothing.
func Label(p Pair) string {
	a := primerRegion[p.Forward]
	b := primerRegion[p.Reverse]
	if a == b {
		return a
	}
	return a + b
}
