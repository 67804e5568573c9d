// core/primer/loader.go
package primer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPairs reads a two-column primer pair list (forward, reverse) from a
// comma- or tab-delimited file. Blank lines and '#' comments are skipped;
// sequences are upper-cased.
func LoadPairs(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Pair
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		var f []string
		if strings.ContainsRune(line, ',') {
			f = strings.Split(line, ",")
			for i := range f {
				f[i] = strings.TrimSpace(f[i])
			}
		} else {
			f = strings.Fields(line)
		}
		if len(f) != 2 || f[0] == "" || f[1] == "" {
			return nil, fmt.Errorf("%s:%d: want two columns (forward, reverse)", path, ln)
		}
		list = append(list, Pair{
			Forward: strings.ToUpper(f[0]),
			Reverse: strings.ToUpper(f[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no primer pairs found", path)
	}
	return list, nil
}
