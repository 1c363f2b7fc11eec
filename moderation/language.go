package moderation

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// minDetectableRunes avoids guessing a language from a couple of letters.
const minDetectableRunes = 12

// DetectLanguage returns the ISO 639-1 code of text, or "" when the
// detection is not reliable.
func DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minDetectableRunes {
		return ""
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
