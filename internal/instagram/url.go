package instagram

import (
	"regexp"
	"strings"
)

var urlRegex = regexp.MustCompile(`https?://(?:www\.)?instagram\.com/[^\s]+`)

// trailing punctuation messengers like to glue onto pasted links
const trailingCutset = ").,]"

// ExtractURL finds the first Instagram link in free-form text and strips
// trailing punctuation from it. Returns ok=false when the text is empty or
// contains no recognizable link.
func ExtractURL(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	match := urlRegex.FindString(text)
	if match == "" {
		return "", false
	}
	match = strings.TrimRight(match, trailingCutset)
	if match == "" {
		return "", false
	}
	return match, true
}
