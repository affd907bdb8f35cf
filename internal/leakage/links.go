package leakage

import (
	"regexp"
	"strings"
)

var (
	// schemePattern and wwwPattern catch explicit URLs in any form.
	schemePattern = regexp.MustCompile(`(?i)\bhttps?://\S+`)
	wwwPattern    = regexp.MustCompile(`(?i)\bwww\.\S+`)

	// domainPattern catches bare label.tld hosts. The TLD set is fixed so
	// that version strings ("v2.0") and decimals ("3.14") never match.
	domainPattern = regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9\-]*\.(?:com|net|org|vn|io|co|me|info|biz|xyz|top|site|online|shop|store|club|link|gg|tv|cc|ly)\b(?:/\S*)?`)
)

// socialDomains is the redundant catch-all: known social and messaging hosts
// whose presence rejects a message even when spacing or punctuation breaks
// the URL shape ("face book . com").
var socialDomains = []string{
	"facebook.com",
	"fb.com",
	"zalo.me",
	"chat.zalo.me",
	"instagram.com",
	"telegram.me",
	"t.me",
	"wa.me",
	"m.me",
	"whatsapp.com",
	"messenger.com",
	"tiktok.com",
	"youtube.com",
	"youtu.be",
	"discord.gg",
}

// minNeedleLen guards the collapsed-text containment scan. Collapsing
// normalizes "t.me" down to "tme", which sits inside ordinary Vietnamese
// once word spacing is gone; such short needles stay regex-only.
const minNeedleLen = 6

// socialNeedles holds socialDomains normalized with the same collapse rules
// applied to messages, so both sides of the containment check agree.
var socialNeedles = buildSocialNeedles()

func buildSocialNeedles() []string {
	needles := make([]string, 0, len(socialDomains))
	for _, d := range socialDomains {
		n := normalize(d, true)
		if len(n) >= minNeedleLen {
			needles = append(needles, n)
		}
	}
	return needles
}

// hasLink reports whether text contains a URL, a bare domain, or a known
// social/messaging host. A single link anywhere rejects the whole message.
func hasLink(text string) bool {
	if schemePattern.MatchString(text) ||
		wwwPattern.MatchString(text) ||
		domainPattern.MatchString(text) {
		return true
	}

	collapsed := normalize(text, true)
	for _, needle := range socialNeedles {
		if strings.Contains(collapsed, needle) {
			return true
		}
	}
	return false
}
