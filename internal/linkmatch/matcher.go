// Package linkmatch scores page links against the compliance pattern catalog
// to find the best candidate link per category.
//
// Matching runs in two passes: the detected language's patterns first, then
// every other language as a fallback. A candidate is accepted only when its
// score clears the acceptance floor; ties keep the earliest match so pattern
// order in the catalog acts as the tie-break.
package linkmatch

import (
	"strings"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
	"github.com/wbuf81/oscar/internal/page"
)

// Matcher finds the best link match for compliance categories. Custom
// categories carry a flat keyword list and are matched against it as an
// English-only pattern set.
type Matcher struct {
	catalog *catalog.Catalog
	custom  map[compliance.Category][]string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithCustomCategories registers user-defined categories and their keyword
// lists alongside the built-in catalog.
func WithCustomCategories(custom map[compliance.Category][]string) Option {
	return func(m *Matcher) {
		m.custom = custom
	}
}

// New returns a Matcher over the given catalog.
func New(c *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{catalog: c}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// FindBestMatch scans the links for the given category in the given
// (normalized) language. The zero MatchResult with Found false is returned
// when nothing clears the acceptance floor.
func (m *Matcher) FindBestMatch(links []page.Link, cat compliance.Category, language string) compliance.MatchResult {
	patterns := m.catalog.Patterns(cat)
	if patterns == nil {
		if keywords, ok := m.custom[cat]; ok {
			return m.matchCustom(links, cat, keywords)
		}

		return compliance.MatchResult{}
	}

	best := compliance.MatchResult{}

	// Primary pass: detected language plus the keyword+URL fallback.
	for _, link := range links {
		hrefLower := strings.ToLower(link.Href)
		textLower := link.FullText()

		for _, pattern := range patterns[language] {
			score := m.scorePattern(textLower, hrefLower, pattern, cat)
			if score > best.Score {
				best = compliance.MatchResult{
					Found:          true,
					URL:            link.Href,
					Text:           link.Text,
					MatchedPattern: pattern,
					Score:          score,
				}
			}
		}

		if kw, indicator := m.keywordURLMatch(textLower, hrefLower, cat, language); kw != "" && indicator != "" {
			if catalog.ScoreKeywordURL > best.Score {
				best = compliance.MatchResult{
					Found:          true,
					URL:            link.Href,
					Text:           link.Text,
					MatchedPattern: kw + " (keyword+URL)",
					Score:          catalog.ScoreKeywordURL,
				}
			}
		}
	}

	if best.Found && best.Score >= catalog.ScoreHref {
		return best
	}

	// Fallback pass: every other language, carrying the running best score so
	// a weaker cross-language hit never displaces a stronger primary one.
	for _, lang := range m.catalog.Languages() {
		if lang == language {
			continue
		}

		for _, link := range links {
			hrefLower := strings.ToLower(link.Href)
			textLower := link.FullText()

			for _, pattern := range patterns[lang] {
				score := m.scorePattern(textLower, hrefLower, pattern, cat)
				if score > best.Score {
					best = compliance.MatchResult{
						Found:           true,
						URL:             link.Href,
						Text:            link.Text,
						MatchedPattern:  pattern,
						MatchedLanguage: lang,
						Score:           score,
					}
				}
			}
		}
	}

	if best.Found && best.Score >= catalog.ScoreHref {
		return best
	}

	return compliance.MatchResult{}
}

// matchCustom scores links against a custom category's keyword list. No
// cross-language pass: custom keywords are language-agnostic already.
func (m *Matcher) matchCustom(links []page.Link, cat compliance.Category, keywords []string) compliance.MatchResult {
	best := compliance.MatchResult{}

	for _, link := range links {
		hrefLower := strings.ToLower(link.Href)
		textLower := link.FullText()

		for _, kw := range keywords {
			score := m.scorePattern(textLower, hrefLower, kw, cat)
			if score > best.Score {
				best = compliance.MatchResult{
					Found:          true,
					URL:            link.Href,
					Text:           link.Text,
					MatchedPattern: kw,
					Score:          score,
				}
			}
		}
	}

	if best.Found && best.Score >= catalog.ScoreHref {
		return best
	}

	return compliance.MatchResult{}
}

// scorePattern scores one pattern against one link's text and href. The base
// tiers are mutually exclusive; path bonuses stack on top of whichever tier
// hit, and on a zero base when only the bonus path matches.
func (m *Matcher) scorePattern(textLower, hrefLower, pattern string, cat compliance.Category) int {
	normalized := normalize(pattern)
	isDoNotSell := cat == compliance.CategoryDoNotSell

	score := 0

	switch {
	case textLower == normalized:
		score = catalog.ScoreExact
	case strings.HasPrefix(textLower, normalized):
		score = catalog.ScoreStartsWith
	case strings.Contains(textLower, normalized):
		score = catalog.ScoreContains
	case isDoNotSell && allWordsPresent(textLower, normalized):
		score = catalog.ScoreAllWords
	default:
		for _, sep := range []string{"-", "_", ""} {
			hrefPattern := strings.Join(strings.Fields(normalized), sep)
			if strings.Contains(hrefLower, hrefPattern) {
				score = catalog.ScoreHref
				break
			}
		}
	}

	if strings.Contains(hrefLower, "/privacy") || strings.Contains(hrefLower, "/legal") || strings.Contains(hrefLower, "/terms") {
		score += catalog.BonusLegalPath
	}

	if isDoNotSell && (strings.Contains(hrefLower, "do-not-sell") || strings.Contains(hrefLower, "ccpa") || strings.Contains(hrefLower, "personal-information")) {
		score += catalog.BonusOptOutPath
	}

	return score
}

// keywordURLMatch reports the first core keyword found in the link text and
// the first URL indicator found in the href, for categories that carry them.
// Keywords from the detected language are tried first, then the remaining
// languages in catalog order.
func (m *Matcher) keywordURLMatch(textLower, hrefLower string, cat compliance.Category, language string) (keyword, indicator string) {
	keywords := m.catalog.CoreKeywords(cat)
	if keywords == nil {
		return "", ""
	}

	indicators := m.catalog.URLIndicators(cat)
	for _, ind := range indicators {
		if strings.Contains(hrefLower, ind) {
			indicator = ind
			break
		}
	}

	if indicator == "" {
		return "", ""
	}

	seen := map[string]bool{}

	for _, kw := range keywords[language] {
		seen[kw] = true

		if strings.Contains(textLower, strings.ToLower(kw)) {
			return kw, indicator
		}
	}

	for _, lang := range m.catalog.Languages() {
		for _, kw := range keywords[lang] {
			if seen[kw] {
				continue
			}

			seen[kw] = true

			if strings.Contains(textLower, strings.ToLower(kw)) {
				return kw, indicator
			}
		}
	}

	return "", indicator
}

// normalize lowercases and collapses interior whitespace to single spaces.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// allWordsPresent reports whether every word of a multi-word pattern appears
// somewhere in the text, in any order.
func allWordsPresent(textLower, normalizedPattern string) bool {
	words := strings.Fields(normalizedPattern)
	if len(words) < 2 {
		return false
	}

	for _, word := range words {
		if !strings.Contains(textLower, word) {
			return false
		}
	}

	return true
}
