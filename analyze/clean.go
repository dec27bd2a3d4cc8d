package analyze

import "strings"

// chromeTokens are interface fragments that leak into extracted answers:
// action buttons, attributions, consent banners, navigation. A line dominated
// by one of these is chrome, not answer. Read-only after init.
var chromeTokens = []string{
	"copy",
	"copied",
	"regenerate",
	"powered by",
	"cookie",
	"accept all",
	"sign in",
	"sign up",
	"log in",
	"was this helpful",
	"thumbs up",
	"thumbs down",
	"feedback",
	"share",
	"sources",
	"ask another question",
	"clear conversation",
	"view source",
	"skip to content",
	"terms of service",
	"privacy policy",
}

// maxChromeLineLen bounds how long a line can be and still be dismissed as
// chrome. Longer lines containing a token (an answer sentence mentioning
// "copy", say) are kept.
const maxChromeLineLen = 48

// cleanChrome strips interface chrome from an extracted answer while
// preserving its sentence structure. Lines survive unless they are chrome;
// the answer's own text is never rewritten.
func cleanChrome(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if isChromeLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isChromeLine(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" {
		return false
	}
	if len(trimmed) > maxChromeLineLen {
		return false
	}
	for _, tok := range chromeTokens {
		if strings.Contains(trimmed, tok) {
			return true
		}
	}
	return false
}
