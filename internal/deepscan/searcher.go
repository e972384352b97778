// Package deepscan searches fetched legal documents for compliance language
// that the link-level scan could not resolve. It fetches each discovered
// document (HTML or PDF), extracts plain text, and runs the per-category
// phrase search from the pattern catalog.
package deepscan

import (
	"strings"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
)

// excerptContext is the number of bytes kept on each side of the first
// matched phrase in the evidence excerpt.
const excerptContext = 50

// Searcher runs the catalog's deep-scan phrase search over document text.
type Searcher struct {
	catalog *catalog.Catalog
}

// NewSearcher returns a Searcher over the given catalog.
func NewSearcher(c *catalog.Catalog) *Searcher {
	return &Searcher{catalog: c}
}

// Search scans the text for each requested category's phrases. A category is
// present in the result only when it reached its configured minimum number of
// distinct phrase matches; categories without a deep-scan config are skipped.
// Confidence is matched/total phrases, clamped to 1.
func (s *Searcher) Search(text string, categories []compliance.Category) map[compliance.Category]compliance.DeepMatch {
	textLower := strings.ToLower(text)
	results := map[compliance.Category]compliance.DeepMatch{}

	for _, cat := range categories {
		cfg, ok := s.catalog.DeepScan(cat)
		if !ok {
			continue
		}

		var (
			matched []string
			excerpt string
		)

		for _, pattern := range cfg.Patterns {
			idx := strings.Index(textLower, pattern)
			if idx < 0 {
				continue
			}

			matched = append(matched, pattern)

			// Offsets index the lowered haystack; case folding can change
			// byte lengths, so the excerpt is cut from the same string.
			if excerpt == "" {
				excerpt = excerptAround(textLower, idx, len(pattern))
			}
		}

		minMatches := cfg.MinMatches
		if minMatches < 1 {
			minMatches = 1
		}

		if len(matched) < minMatches {
			continue
		}

		confidence := float64(len(matched)) / float64(len(cfg.Patterns))
		if confidence > 1 {
			confidence = 1
		}

		results[cat] = compliance.DeepMatch{
			Found:           true,
			MatchedPatterns: matched,
			MatchedText:     excerpt,
			Confidence:      confidence,
		}
	}

	return results
}

// excerptAround returns the matched phrase with up to excerptContext bytes of
// surrounding text on each side, trimmed and wrapped in ellipses.
func excerptAround(text string, idx, matchLen int) string {
	start := idx - excerptContext
	if start < 0 {
		start = 0
	}

	end := idx + matchLen + excerptContext
	if end > len(text) {
		end = len(text)
	}

	return "..." + strings.TrimSpace(text[start:end]) + "..."
}
