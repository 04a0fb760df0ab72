package scale

import (
	"iter"
	"regexp"
)

// quantityPattern matches a vulgar fraction or an integer/decimal. The
// fraction alternative comes first so "1/2" is one token, not "1" and "2".
var quantityPattern = regexp.MustCompile(`\d+/\d+|\d+(?:\.\d+)?`)

// Fragment is a span of an ingredient line: either literal text or a
// quantity token.
type Fragment struct {
	Text     string
	Quantity bool
}

// Fragments splits line into literal and quantity spans in a single
// left-to-right pass. Concatenating the Text of every fragment reproduces
// line exactly.
func Fragments(line string) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		pos := 0
		for pos < len(line) {
			loc := quantityPattern.FindStringIndex(line[pos:])
			if loc == nil {
				break
			}
			start, end := pos+loc[0], pos+loc[1]
			if start > pos && !yield(Fragment{Text: line[pos:start]}) {
				return
			}
			if !yield(Fragment{Text: line[start:end], Quantity: true}) {
				return
			}
			pos = end
		}
		if pos < len(line) {
			yield(Fragment{Text: line[pos:]})
		}
	}
}
