package linkmatch

import (
	"testing"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
	"github.com/wbuf81/oscar/internal/page"
)

func newTestMatcher(opts ...Option) *Matcher {
	return New(catalog.Default(), opts...)
}

func TestFindBestMatchScoringTiers(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name      string
		link      page.Link
		category  compliance.Category
		wantFound bool
		wantScore int
	}{
		{
			name:      "exact text match",
			link:      page.Link{Href: "https://example.com/p", Text: "Privacy Policy"},
			category:  compliance.CategoryPrivacyPolicy,
			wantFound: true,
			wantScore: catalog.ScoreExact,
		},
		{
			name:      "text starts with pattern",
			link:      page.Link{Href: "https://example.com/p", Text: "Privacy Policy and more"},
			category:  compliance.CategoryPrivacyPolicy,
			wantFound: true,
			wantScore: catalog.ScoreStartsWith,
		},
		{
			name:      "text contains pattern",
			link:      page.Link{Href: "https://example.com/p", Text: "Read our Privacy Policy here"},
			category:  compliance.CategoryPrivacyPolicy,
			wantFound: true,
			wantScore: catalog.ScoreContains,
		},
		{
			name:      "href match only",
			link:      page.Link{Href: "https://example.com/cookie-policy", Text: "More info"},
			category:  compliance.CategoryCookiePolicy,
			wantFound: true,
			wantScore: catalog.ScoreHref,
		},
		{
			name:      "below floor rejected",
			link:      page.Link{Href: "https://example.com/about", Text: "About our company"},
			category:  compliance.CategoryPrivacyPolicy,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.FindBestMatch([]page.Link{tt.link}, tt.category, "en")

			if got.Found != tt.wantFound {
				t.Fatalf("Found = %v, want %v (%+v)", got.Found, tt.wantFound, got)
			}

			if tt.wantFound && got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestFindBestMatchExactBeatsContains(t *testing.T) {
	m := newTestMatcher()

	links := []page.Link{
		{Href: "https://example.com/a", Text: "Read the Privacy Policy"},
		{Href: "https://example.com/b", Text: "Privacy Policy"},
	}

	got := m.FindBestMatch(links, compliance.CategoryPrivacyPolicy, "en")
	if !got.Found || got.URL != "https://example.com/b" {
		t.Fatalf("expected exact match to win, got %+v", got)
	}

	if got.Score != catalog.ScoreExact {
		t.Errorf("Score = %d, want %d", got.Score, catalog.ScoreExact)
	}
}

func TestFindBestMatchTieKeepsFirst(t *testing.T) {
	m := newTestMatcher()

	// Both links match the same pattern exactly; the first submitted wins.
	links := []page.Link{
		{Href: "https://example.com/first", Text: "Cookie Policy"},
		{Href: "https://example.com/second", Text: "Cookie Policy"},
	}

	got := m.FindBestMatch(links, compliance.CategoryCookiePolicy, "en")
	if got.URL != "https://example.com/first" {
		t.Errorf("expected first link on tie, got %s", got.URL)
	}
}

func TestFindBestMatchBonusesStack(t *testing.T) {
	m := newTestMatcher()

	// Exact pattern plus /privacy path: 100 + 20.
	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.com/privacy", Text: "Privacy Policy"},
	}, compliance.CategoryPrivacyPolicy, "en")

	if got.Score != catalog.ScoreExact+catalog.BonusLegalPath {
		t.Errorf("Score = %d, want %d", got.Score, catalog.ScoreExact+catalog.BonusLegalPath)
	}

	// doNotSell with a CCPA href stacks both bonuses on the base tier.
	got = m.FindBestMatch([]page.Link{
		{Href: "https://example.com/privacy/do-not-sell", Text: "Do Not Sell"},
	}, compliance.CategoryDoNotSell, "en")

	want := catalog.ScoreExact + catalog.BonusLegalPath + catalog.BonusOptOutPath
	if got.Score != want {
		t.Errorf("Score = %d, want %d", got.Score, want)
	}
}

func TestFindBestMatchAllWordsForDoNotSell(t *testing.T) {
	m := newTestMatcher()

	// All pattern words present out of order only counts for doNotSell.
	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.com/x", Text: "sell not do my information personal"},
	}, compliance.CategoryDoNotSell, "en")

	if !got.Found || got.Score != catalog.ScoreAllWords {
		t.Fatalf("expected all-words score %d, got %+v", catalog.ScoreAllWords, got)
	}
}

func TestFindBestMatchKeywordURLFallback(t *testing.T) {
	m := newTestMatcher()

	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.com/datenschutz", Text: "Ihre Privacy bei uns"},
	}, compliance.CategoryPrivacyPolicy, "en")

	if !got.Found || got.Score != catalog.ScoreKeywordURL {
		t.Fatalf("expected keyword+URL fallback, got %+v", got)
	}

	if got.MatchedPattern != "privacy (keyword+URL)" {
		t.Errorf("MatchedPattern = %q", got.MatchedPattern)
	}
}

func TestFindBestMatchCrossLanguageFallback(t *testing.T) {
	m := newTestMatcher()

	// German page link on a page declared English: found via the fallback
	// pass and attributed to the matching language.
	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.de/recht", Text: "Impressum"},
	}, compliance.CategoryLegal, "en")

	if !got.Found {
		t.Fatal("expected cross-language match")
	}

	if got.MatchedLanguage != "de" {
		t.Errorf("MatchedLanguage = %q, want de", got.MatchedLanguage)
	}

	if got.Score != catalog.ScoreExact {
		t.Errorf("Score = %d, want %d", got.Score, catalog.ScoreExact)
	}
}

func TestFindBestMatchPrimaryLanguageWinsOverFallback(t *testing.T) {
	m := newTestMatcher()

	// A primary-language hit above the floor short-circuits the fallback pass.
	links := []page.Link{
		{Href: "https://example.com/a", Text: "Privacy Policy"},
		{Href: "https://example.com/b", Text: "Datenschutzerklärung"},
	}

	got := m.FindBestMatch(links, compliance.CategoryPrivacyPolicy, "en")
	if got.URL != "https://example.com/a" || got.MatchedLanguage != "" {
		t.Fatalf("expected primary-language winner, got %+v", got)
	}
}

func TestFindBestMatchNoLinks(t *testing.T) {
	m := newTestMatcher()

	got := m.FindBestMatch(nil, compliance.CategoryPrivacyPolicy, "en")
	if got.Found {
		t.Fatalf("expected no match on empty link set, got %+v", got)
	}
}

func TestFindBestMatchUnknownCategory(t *testing.T) {
	m := newTestMatcher()

	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.com/p", Text: "Privacy Policy"},
	}, compliance.Category("nonexistent"), "en")

	if got.Found {
		t.Fatalf("expected no match for unregistered category, got %+v", got)
	}
}

func TestFindBestMatchCustomCategory(t *testing.T) {
	custom := map[compliance.Category][]string{
		"gdprRep": {"eu representative", "gdpr representative"},
	}

	m := newTestMatcher(WithCustomCategories(custom))

	got := m.FindBestMatch([]page.Link{
		{Href: "https://example.com/gdpr", Text: "EU Representative"},
	}, "gdprRep", "en")

	if !got.Found || got.Score != catalog.ScoreExact {
		t.Fatalf("expected custom category exact match, got %+v", got)
	}

	if got.MatchedPattern != "eu representative" {
		t.Errorf("MatchedPattern = %q", got.MatchedPattern)
	}

	// Below the floor stays unfound for custom categories too.
	got = m.FindBestMatch([]page.Link{
		{Href: "https://example.com/about", Text: "Company info"},
	}, "gdprRep", "en")

	if got.Found {
		t.Fatalf("expected no custom match, got %+v", got)
	}
}
