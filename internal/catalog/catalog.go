// Package catalog holds the static compliance pattern data: per-language
// phrase lists, URL indicators, cookie banner signatures, deep-scan pattern
// configs, scoring constants, and the default weight table. The data is
// assembled once into an immutable Catalog and passed explicitly to every
// component, so tests can inject alternate catalogs.
package catalog

import (
	"time"

	"github.com/wbuf81/oscar/internal/compliance"
)

// Link matcher scoring constants. ScoreHref is also the acceptance floor:
// candidates scoring below it are treated as noise.
const (
	ScoreExact      = 100
	ScoreStartsWith = 80
	ScoreContains   = 60
	ScoreAllWords   = 50
	ScoreKeywordURL = 45
	ScoreHref       = 40

	// BonusLegalPath is added when the href contains a well-known legal
	// path segment (/privacy, /legal, /terms).
	BonusLegalPath = 20
	// BonusOptOutPath is added for the do-not-sell category when the href
	// contains a CCPA-specific segment.
	BonusOptOutPath = 30
)

// LanguagePatterns maps a language code to an ordered phrase list. Order is
// the tie-break among equal scores: the first-listed pattern wins.
type LanguagePatterns map[string][]string

// DeepScanConfig is one category's document text-search configuration.
// MinMatches is the number of distinct phrases that must appear before the
// category is accepted; higher values guard ambiguous categories against
// single incidental keywords.
type DeepScanConfig struct {
	Label      string
	Patterns   []string
	MinMatches int
}

// BannerTextPatterns is one language's cookie banner phrases. Languages are
// checked in the order they are listed; the slice makes that priority an
// explicit part of the data model rather than map iteration luck.
type BannerTextPatterns struct {
	Language string
	Phrases  []string
}

// BannerPatterns holds the cookie banner detection signatures, grouped by
// detection method.
type BannerPatterns struct {
	IDs     []string
	Classes []string
	Scripts []string
	Text    []BannerTextPatterns
}

// Limits bounds the deep-scan document pass.
type Limits struct {
	MaxDocuments  int
	FetchTimeout  time.Duration
	MaxTextLength int
	MaxPDFPages   int
}

// Catalog is the assembled, immutable pattern data for one scanner
// configuration.
type Catalog struct {
	categories       []compliance.Category
	patterns         map[compliance.Category]LanguagePatterns
	coreKeywords     map[compliance.Category]LanguagePatterns
	urlIndicators    map[compliance.Category][]string
	banner           BannerPatterns
	weights          compliance.Weights
	labels           map[compliance.Category]string
	deepScan         map[compliance.Category]DeepScanConfig
	documentLabels   map[compliance.Category]string
	documentPriority []compliance.Category
	languages        []string
	limits           Limits
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		categories:       categoryOrder,
		patterns:         linkPatterns,
		coreKeywords:     coreKeywords,
		urlIndicators:    urlIndicators,
		banner:           bannerPatterns,
		weights:          defaultWeights,
		labels:           labels,
		deepScan:         deepScanPatterns,
		documentLabels:   documentLabels,
		documentPriority: documentPriority,
		languages:        supportedLanguages,
		limits:           defaultLimits,
	}
}

// Categories returns the built-in category ids in presentation order.
func (c *Catalog) Categories() []compliance.Category {
	out := make([]compliance.Category, len(c.categories))
	copy(out, c.categories)

	return out
}

// Patterns returns the language pattern set for a category, or nil when the
// category has no link patterns (e.g. cookieBanner, custom categories).
func (c *Catalog) Patterns(cat compliance.Category) LanguagePatterns {
	return c.patterns[cat]
}

// CoreKeywords returns the single-keyword fallback lists for a category, or
// nil when the category has none.
func (c *Catalog) CoreKeywords(cat compliance.Category) LanguagePatterns {
	return c.coreKeywords[cat]
}

// URLIndicators returns the URL path indicator list for a category.
func (c *Catalog) URLIndicators(cat compliance.Category) []string {
	return c.urlIndicators[cat]
}

// Banner returns the cookie banner detection signatures.
func (c *Catalog) Banner() BannerPatterns {
	return c.banner
}

// DefaultWeights returns a copy of the built-in weight table with every
// category enabled.
func (c *Catalog) DefaultWeights() compliance.Weights {
	out := make(compliance.Weights, len(c.weights))
	for cat, w := range c.weights {
		out[cat] = w
	}

	return out
}

// Label returns the human-readable name for a category, falling back to the
// raw id for unknown (custom) categories.
func (c *Catalog) Label(cat compliance.Category) string {
	if label, ok := c.labels[cat]; ok {
		return label
	}

	return string(cat)
}

// DocumentLabel returns the short attribution name for a document category,
// falling back to the raw id.
func (c *Catalog) DocumentLabel(cat compliance.Category) string {
	if label, ok := c.documentLabels[cat]; ok {
		return label
	}

	return string(cat)
}

// DeepScan returns the deep-scan pattern config for a category.
func (c *Catalog) DeepScan(cat compliance.Category) (DeepScanConfig, bool) {
	cfg, ok := c.deepScan[cat]

	return cfg, ok
}

// DeepScanCategories returns the ids of every category with a deep-scan
// config, in document priority order.
func (c *Catalog) DeepScanCategories() []compliance.Category {
	var cats []compliance.Category

	for _, cat := range c.documentPriority {
		if _, ok := c.deepScan[cat]; ok {
			cats = append(cats, cat)
		}
	}

	return cats
}

// DocumentPriority returns the order in which discovered documents should be
// fetched and searched. Terms and privacy documents lead because they are the
// most likely hosts for embedded compliance language.
func (c *Catalog) DocumentPriority() []compliance.Category {
	out := make([]compliance.Category, len(c.documentPriority))
	copy(out, c.documentPriority)

	return out
}

// Limits returns the deep-scan bounds.
func (c *Catalog) Limits() Limits {
	return c.limits
}

// Languages returns the supported language codes.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)

	return out
}

// NormalizeLanguage lowercases and truncates a language tag to its primary
// subtag and falls back to English for unsupported or empty values.
func (c *Catalog) NormalizeLanguage(lang string) string {
	if len(lang) >= 2 {
		primary := toLower2(lang)
		for _, supported := range c.languages {
			if primary == supported {
				return primary
			}
		}
	}

	return "en"
}

// toLower2 lowercases the first two ASCII letters of a language tag.
func toLower2(lang string) string {
	b := []byte(lang[:2])
	for i, ch := range b {
		if ch >= 'A' && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}

	return string(b)
}
