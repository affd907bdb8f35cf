package leakage

import (
	"regexp"
	"strings"
)

// Accepted digit-count range for a phone candidate once separators are
// stripped. Vietnamese numbers are 10 digits domestically (11 with the 84
// country code, 8 with an old-style area code); the range is kept a little
// loose on both ends on purpose.
const (
	digitPhoneMin = 8
	digitPhoneMax = 12
)

var (
	// prefixedRunPattern finds candidates that start with the trunk prefix
	// (0) or the international marker (84 / +84), followed by at least seven
	// more digits with arbitrary separators interleaved. The leading
	// non-digit guard keeps the pattern from locking onto a 0 or 84 in the
	// middle of a longer number.
	prefixedRunPattern = regexp.MustCompile(`(?:^|[^\d])((?:\+?84|0)[\d\s.\-()]{7,}\d)`)

	// bareRunPattern finds contiguous digit runs that are not part of a
	// longer run. Candidates still need a significant leading pattern, see
	// significantPrefixes.
	bareRunPattern = regexp.MustCompile(`(?:^|[^\d])(\d{8,12})(?:[^\d]|$)`)

	// groupedRunPattern finds 3-5 groups of 2-4 digits joined by a single
	// space, dot, or dash: the way people most often write numbers down.
	groupedRunPattern = regexp.MustCompile(`(?:^|[^\d])(\d{2,4}(?:[ .\-]\d{2,4}){2,4})(?:[^\d]|$)`)

	// parenPrefixPattern covers the "(0xx) xxx xxxx" convention where the
	// trunk prefix and area code sit in parentheses.
	parenPrefixPattern = regexp.MustCompile(`\(\s*0\d{1,3}\s*\)[ .\-]?\d{2,4}[ .\-]?\d{2,4}(?:[ .\-]?\d{2,4})?`)
)

// significantPrefixes are the leading digit pairs a bare run must start with
// to count as a phone number: current Vietnamese mobile ranges (03, 05, 07,
// 08, 09), the legacy 11-digit 01x range, and the bare country code. Keeps
// order IDs and prices from tripping the detector.
var significantPrefixes = []string{"09", "08", "07", "05", "03", "01", "84"}

// hasDigitPhone reports whether text contains a telephone number written in
// digits. It runs against the raw message so separators stay visible to the
// grouping heuristics; people rarely type a number contiguously when they
// are trying to slip it past a filter.
func hasDigitPhone(text string) bool {
	for _, m := range prefixedRunPattern.FindAllStringSubmatch(text, -1) {
		if d := digitsOf(m[1]); phoneLength(d) && hasTrunkOrIntlPrefix(d) {
			return true
		}
	}

	for _, m := range bareRunPattern.FindAllStringSubmatch(text, -1) {
		if significantStart(m[1]) {
			return true
		}
	}

	for _, m := range groupedRunPattern.FindAllStringSubmatch(text, -1) {
		if d := digitsOf(m[1]); phoneLength(d) && hasTrunkOrIntlPrefix(d) {
			return true
		}
	}

	for _, m := range parenPrefixPattern.FindAllString(text, -1) {
		if d := digitsOf(m); phoneLength(d) {
			return true
		}
	}

	return false
}

func phoneLength(digits string) bool {
	return len(digits) >= digitPhoneMin && len(digits) <= digitPhoneMax
}

func hasTrunkOrIntlPrefix(digits string) bool {
	return strings.HasPrefix(digits, "0") || strings.HasPrefix(digits, "84")
}

func significantStart(digits string) bool {
	for _, p := range significantPrefixes {
		if strings.HasPrefix(digits, p) {
			return true
		}
	}
	return false
}

// digitsOf strips everything but ASCII digits.
func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
