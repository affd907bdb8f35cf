package leakage

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedPunct is removed during normalization. Other separators (slashes,
// colons, question marks) survive so the keyword scan can still tokenize on
// them.
const strippedPunct = ".,-_()"

// dFold handles the one Vietnamese letter NFD cannot decompose: đ carries no
// combining mark, so stripping marks alone would leave it behind.
var dFold = strings.NewReplacer("đ", "d", "Đ", "D")

// normalize lowercases text, strips diacritics and a small set of
// punctuation, and handles whitespace in one of two ways: when
// collapseWhitespace is true every whitespace run is removed outright (the
// form used for keyword, link, and digit scanning); when false runs are
// collapsed to a single space (the form the worded-phone detector tokenizes).
// Empty input yields an empty string.
func normalize(text string, collapseWhitespace bool) string {
	if text == "" {
		return ""
	}

	s := removeDiacritics(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if strings.ContainsRune(strippedPunct, r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !collapseWhitespace && !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// removeDiacritics decomposes to NFD, drops combining marks, and recomposes.
// The transform chain is built per call: chained transformers carry internal
// buffers and are not safe to share across goroutines.
func removeDiacritics(s string) string {
	s = dFold.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Malformed input never blocks screening; the detectors just see the
		// original bytes.
		return s
	}
	return out
}
