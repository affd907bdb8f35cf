package leakage

import (
	"regexp"
	"strings"
	"unicode"
)

// shortAliasMax bounds the alias length below which only exact/whole-word
// matching applies. Two-letter abbreviations like "fb" or "zl" would match
// inside far too many ordinary words otherwise.
const shortAliasMax = 3

// keywordEntry groups one off-platform service with the surface spellings
// users actually type for it.
type keywordEntry struct {
	name    string
	aliases []string
}

// blockedPlatforms lists the messaging and social platforms a deal must not
// be moved to. Aliases are stored pre-normalized (lowercase, no diacritics).
var blockedPlatforms = []keywordEntry{
	{name: "zalo", aliases: []string{"zalo", "zal0", "zl"}},
	{name: "facebook", aliases: []string{"facebook", "face", "fb"}},
	{name: "messenger", aliases: []string{"messenger", "mess"}},
	{name: "instagram", aliases: []string{"instagram", "insta", "ig"}},
	{name: "telegram", aliases: []string{"telegram", "tele", "tg"}},
	{name: "whatsapp", aliases: []string{"whatsapp", "whatsap"}},
	{name: "viber", aliases: []string{"viber"}},
	{name: "tiktok", aliases: []string{"tiktok"}},
	{name: "skype", aliases: []string{"skype"}},
	{name: "discord", aliases: []string{"discord"}},
	{name: "wechat", aliases: []string{"wechat"}},
	{name: "snapchat", aliases: []string{"snapchat"}},
}

// allowWords are short everyday tokens that must never trip the keyword
// matcher even though some sit inside blocked aliases ("alo" inside "zalo").
// Membership is only ever tested by whole-token equality; substring checks
// against this set would whitelist embedded violations.
var allowWords = map[string]bool{
	"alo":   true,
	"chao":  true,
	"vang":  true,
	"da":    true,
	"ok":    true,
	"oke":   true,
	"okela": true,
	"uh":    true,
	"u":     true,
	"hi":    true,
	"hello": true,
	"nhe":   true,
	"nha":   true,
}

// aliasWordPatterns holds one compiled whole-word pattern per alias, built
// once at init and read-only afterwards.
var aliasWordPatterns = buildAliasPatterns()

func buildAliasPatterns() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, e := range blockedPlatforms {
		for _, a := range e.aliases {
			m[a] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(a) + `\b`)
		}
	}
	return m
}

// hasBlockedKeyword reports whether text names an off-platform service.
//
// Each alias is tested two ways. First as a whole word against the raw text,
// so "ig" matches standalone but never inside "big". Then against the
// whitespace-collapsed normalized text, split on whatever separators survive
// normalization: exact token equality always matches, and aliases longer
// than shortAliasMax additionally match by bidirectional containment, which
// catches run-together spellings ("chozalonhe") and truncated ones ("zal").
// Allow-listed tokens skip the containment test only; an exact alias hit
// always wins.
func hasBlockedKeyword(text string) bool {
	tokens := splitSeparators(normalize(text, true))
	for _, e := range blockedPlatforms {
		for _, alias := range e.aliases {
			if aliasWordPatterns[alias].MatchString(text) {
				return true
			}
			for _, tok := range tokens {
				if tok == alias {
					return true
				}
				if len(alias) <= shortAliasMax || allowWords[tok] {
					continue
				}
				if strings.Contains(tok, alias) {
					return true
				}
				// Truncated-alias direction. Tiny tokens share letters with
				// aliases far too often, so require at least three runes.
				if len(tok) >= 3 && strings.Contains(alias, tok) {
					return true
				}
			}
		}
	}
	return false
}

// isAllowListed reports whether the message is nothing but allow-listed
// tokens (at most two, matching the "short phrase" bound). Whole-token
// equality only.
func isAllowListed(text string) bool {
	fields := strings.Fields(normalize(text, false))
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	for _, f := range fields {
		if !allowWords[f] {
			return false
		}
	}
	return true
}

// splitSeparators splits on every rune that is neither letter nor digit.
func splitSeparators(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
