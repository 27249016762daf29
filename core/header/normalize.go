package header

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a header into a comparison token: accents are stripped, case is
// folded and everything that is not a letter or digit is dropped.
//
//	Normalize("First  Name") == "firstname"
//	Normalize("first_name")  == "firstname"
func Normalize(h string) string {
	// Transformers and casers carry state, so both are built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, h)
	if err != nil {
		folded = h
	}
	folded = cases.Fold().String(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
