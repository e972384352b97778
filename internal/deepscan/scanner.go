package deepscan

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
)

// Scanner walks discovered document links in priority order, fetches each
// document, and searches it for the categories the link scan left unresolved.
// The first document that satisfies a category wins; later documents only see
// categories still missing.
type Scanner struct {
	catalog  *catalog.Catalog
	fetcher  Fetcher
	searcher *Searcher
}

// NewScanner returns a Scanner over the given catalog and fetcher.
func NewScanner(c *catalog.Catalog, fetcher Fetcher) *Scanner {
	return &Scanner{
		catalog:  c,
		fetcher:  fetcher,
		searcher: NewSearcher(c),
	}
}

// scanTarget is one document queued for fetching.
type scanTarget struct {
	key   compliance.Category
	url   string
	label string
}

// Scan fetches up to the document limit from documentLinks and searches each
// for the missing categories. Per-document failures are recorded in the
// summary and never abort the remaining documents. ErrNoDocuments is returned
// when there is nothing to fetch at all.
func (s *Scanner) Scan(ctx context.Context, documentLinks map[compliance.Category]string, missing []compliance.Category) (map[compliance.Category]compliance.Entry, compliance.DeepScanSummary, error) {
	summary := compliance.DeepScanSummary{
		Performed:        true,
		ScannedDocuments: []compliance.Category{},
		ItemsFound:       []compliance.Category{},
	}

	if len(missing) == 0 {
		return map[compliance.Category]compliance.Entry{}, summary, nil
	}

	targets := s.orderTargets(documentLinks)
	if len(targets) == 0 {
		return nil, summary, ErrNoDocuments
	}

	updates := map[compliance.Category]compliance.Entry{}

	for _, target := range targets {
		doc, err := s.fetcher.Fetch(ctx, target.url)
		if err != nil {
			log.Warn().Err(err).Str("document", target.label).Str("url", target.url).Msg("document fetch failed")
			summary.Errors = append(summary.Errors, compliance.DocumentError{
				Document: target.label,
				Error:    err.Error(),
			})

			continue
		}

		if doc.Text == "" {
			continue
		}

		summary.ScannedDocuments = append(summary.ScannedDocuments, target.key)

		stillMissing := make([]compliance.Category, 0, len(missing))
		for _, cat := range missing {
			if _, done := updates[cat]; !done {
				stillMissing = append(stillMissing, cat)
			}
		}

		found := s.searcher.Search(doc.Text, stillMissing)
		for cat, match := range found {
			updates[cat] = compliance.Entry{
				Found:           true,
				DeepScan:        true,
				FoundInDocument: target.label,
				DocumentURL:     target.url,
				DocumentType:    doc.Type,
				MatchedText:     match.MatchedText,
				MatchedPatterns: match.MatchedPatterns,
				Confidence:      match.Confidence,
			}
			summary.ItemsFound = append(summary.ItemsFound, cat)
		}

		log.Debug().
			Str("document", target.label).
			Int("items_found", len(found)).
			Int("still_missing", len(stillMissing)-len(found)).
			Msg("document scanned")
	}

	sort.Slice(summary.ItemsFound, func(i, j int) bool {
		return summary.ItemsFound[i] < summary.ItemsFound[j]
	})

	return updates, summary, nil
}

// orderTargets sequences document links: catalog priority order first, then
// any remaining links sorted by category id, capped at the document limit.
func (s *Scanner) orderTargets(documentLinks map[compliance.Category]string) []scanTarget {
	maxDocs := s.catalog.Limits().MaxDocuments

	var targets []scanTarget

	inPriority := map[compliance.Category]bool{}
	for _, cat := range s.catalog.DocumentPriority() {
		inPriority[cat] = true

		if url, ok := documentLinks[cat]; ok && url != "" && len(targets) < maxDocs {
			targets = append(targets, scanTarget{key: cat, url: url, label: s.catalog.DocumentLabel(cat)})
		}
	}

	var rest []compliance.Category
	for cat, url := range documentLinks {
		if !inPriority[cat] && url != "" {
			rest = append(rest, cat)
		}
	}

	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	for _, cat := range rest {
		if len(targets) >= maxDocs {
			break
		}

		targets = append(targets, scanTarget{key: cat, url: documentLinks[cat], label: s.catalog.DocumentLabel(cat)})
	}

	return targets
}
