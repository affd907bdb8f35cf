package leakage

import "strings"

// Tuning constants for the worded-phone walk. A decoded fragment shorter
// than wordedKeepMin at a boundary is judged coincidental and dropped;
// longer fragments survive interleaved noise. A run of wordedPhoneMin to
// wordedPhoneMax digits is phone-shaped. Treat these as policy knobs, not
// derived values.
const (
	wordedKeepMin  = 7
	wordedPhoneMin = 10
	wordedPhoneMax = 11
)

// hasWordedPhone reports whether text spells out a telephone number in
// Vietnamese number words, literal digits, or a mix of both. It walks the
// whitespace-preserved normalized token stream with a digit accumulator:
// digit tokens append verbatim, lexicon words append their decoded digit,
// and any other token is a boundary. At a boundary a phone-shaped run wins
// immediately and a short fragment restarts the accumulator.
func hasWordedPhone(text string) bool {
	tokens := strings.Fields(normalize(text, false))

	var run, full strings.Builder
	sawDigit, sawWord := false, false

	for _, tok := range tokens {
		if isDigitRun(tok) {
			run.WriteString(tok)
			full.WriteString(tok)
			sawDigit = true
			continue
		}
		if d, ok := digitWords[tok]; ok {
			run.WriteByte(d)
			full.WriteByte(d)
			sawWord = true
			continue
		}
		// Boundary token.
		if phoneShaped(run.Len()) {
			return true
		}
		if run.Len() < wordedKeepMin {
			run.Reset()
		}
	}

	if phoneShaped(run.Len()) {
		return true
	}

	// Mixing literal digits with spelled-out ones is itself an evasion
	// signal; demand fewer decoded digits for it.
	if sawDigit && sawWord && full.Len() >= wordedKeepMin {
		return true
	}

	// Finally consider the whole decoded stream, ignoring restarts: a
	// trunk- or 84-prefixed stream of phone length is a number someone
	// padded with filler words.
	decoded := full.String()
	return hasTrunkOrIntlPrefix(decoded) && phoneShaped(len(decoded))
}

func phoneShaped(n int) bool {
	return n >= wordedPhoneMin && n <= wordedPhoneMax
}

func isDigitRun(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
