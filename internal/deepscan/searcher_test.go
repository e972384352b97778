package deepscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
)

func TestSearchFindsCategoryAtThreshold(t *testing.T) {
	s := NewSearcher(catalog.Default())

	text := "Our DMCA agent handles all claims of copyright infringement. " +
		"Send a counter-notification if your material was removed in error."

	results := s.Search(text, []compliance.Category{compliance.CategoryDMCA})

	require.Contains(t, results, compliance.CategoryDMCA)

	match := results[compliance.CategoryDMCA]
	assert.True(t, match.Found)
	assert.Contains(t, match.MatchedPatterns, "dmca agent")
	assert.Contains(t, match.MatchedPatterns, "copyright infringement")
	assert.GreaterOrEqual(t, len(match.MatchedPatterns), 2)
}

func TestSearchBelowMinMatchesOmitted(t *testing.T) {
	s := NewSearcher(catalog.Default())

	// One dmca phrase only; dmca requires two distinct matches.
	text := "Please contact our dmca agent with any questions."

	results := s.Search(text, []compliance.Category{compliance.CategoryDMCA})
	assert.NotContains(t, results, compliance.CategoryDMCA)
}

func TestSearchSingleMatchCategory(t *testing.T) {
	s := NewSearcher(catalog.Default())

	// reportAbuse accepts a single phrase.
	text := "Use this form to report abuse on our platform."

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})

	require.Contains(t, results, compliance.CategoryReportAbuse)
	assert.Equal(t, []string{"report abuse"}, results[compliance.CategoryReportAbuse].MatchedPatterns)
}

func TestSearchConfidenceRatio(t *testing.T) {
	s := NewSearcher(catalog.Default())

	cfg, ok := catalog.Default().DeepScan(compliance.CategoryReportAbuse)
	require.True(t, ok)

	text := "report abuse here. you can also flag content and report user accounts."

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})
	require.Contains(t, results, compliance.CategoryReportAbuse)

	match := results[compliance.CategoryReportAbuse]
	want := float64(len(match.MatchedPatterns)) / float64(len(cfg.Patterns))
	assert.InDelta(t, want, match.Confidence, 1e-9)
	assert.LessOrEqual(t, match.Confidence, 1.0)
}

func TestSearchExcerptWrapsFirstMatch(t *testing.T) {
	s := NewSearcher(catalog.Default())

	padding := strings.Repeat("lorem ipsum ", 20)
	text := padding + "you may report abuse via our form " + padding

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})
	require.Contains(t, results, compliance.CategoryReportAbuse)

	excerpt := results[compliance.CategoryReportAbuse].MatchedText
	assert.True(t, strings.HasPrefix(excerpt, "..."))
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.Contains(t, excerpt, "report abuse")
	// 50 bytes of context either side plus the match and ellipses.
	assert.LessOrEqual(t, len(excerpt), len("report abuse via our form")+2*excerptContext+6+10)
}

func TestSearchExcerptAtTextBoundaries(t *testing.T) {
	s := NewSearcher(catalog.Default())

	text := "report abuse"

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})
	require.Contains(t, results, compliance.CategoryReportAbuse)
	assert.Equal(t, "...report abuse...", results[compliance.CategoryReportAbuse].MatchedText)
}

func TestSearchExcerptSurvivesCaseFoldingLengthChange(t *testing.T) {
	s := NewSearcher(catalog.Default())

	// U+0130 changes byte length when lowered, so offsets into the lowered
	// haystack do not line up with the input. The excerpt must still wrap
	// the matched phrase.
	text := strings.Repeat("İ", 60) + " you may report abuse via our form"

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})
	require.Contains(t, results, compliance.CategoryReportAbuse)

	excerpt := results[compliance.CategoryReportAbuse].MatchedText
	assert.Contains(t, excerpt, "report abuse")
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := NewSearcher(catalog.Default())

	text := "REPORT ABUSE using the link below."

	results := s.Search(text, []compliance.Category{compliance.CategoryReportAbuse})
	assert.Contains(t, results, compliance.CategoryReportAbuse)
}

func TestSearchSkipsUnconfiguredCategories(t *testing.T) {
	s := NewSearcher(catalog.Default())

	text := "sitemap sitemap sitemap"

	results := s.Search(text, []compliance.Category{compliance.CategorySitemap})
	assert.Empty(t, results)
}

func TestSearchEmptyText(t *testing.T) {
	s := NewSearcher(catalog.Default())

	results := s.Search("", []compliance.Category{
		compliance.CategoryDMCA,
		compliance.CategoryReportAbuse,
	})
	assert.Empty(t, results)
}
