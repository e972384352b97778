package deepscan

import (
	"html"
	"regexp"
	"strings"
)

// Regex-based extraction keeps the fetcher free of a DOM dependency; legal
// documents are read for phrase presence, not structure.
var (
	scriptPattern   = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	stylePattern    = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	noscriptPattern = regexp.MustCompile(`(?is)<noscript\b.*?</noscript>`)
	commentPattern  = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// extractHTMLText strips markup from raw HTML and returns collapsed plain
// text, truncated to maxLen bytes.
func extractHTMLText(raw string, maxLen int) string {
	text := scriptPattern.ReplaceAllString(raw, " ")
	text = stylePattern.ReplaceAllString(text, " ")
	text = noscriptPattern.ReplaceAllString(text, " ")
	text = commentPattern.ReplaceAllString(text, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")

	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen]
	}

	return text
}
