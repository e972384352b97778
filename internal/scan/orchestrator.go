// Package scan ties the detectors together into the scan lifecycle.
//
// A scan record moves through three states: scanned (link and banner pass
// complete, score computed, persisted to history), deep-scanned (document
// pass merged in, rescored, history updated in place), and deleted. Deep
// scanning is explicit and at most additive: it can only fill categories the
// link pass left not found, never downgrade one.
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wbuf81/oscar/internal/banner"
	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
	"github.com/wbuf81/oscar/internal/deepscan"
	"github.com/wbuf81/oscar/internal/domain"
	"github.com/wbuf81/oscar/internal/history"
	"github.com/wbuf81/oscar/internal/linkmatch"
	"github.com/wbuf81/oscar/internal/page"
	"github.com/wbuf81/oscar/internal/score"
	"github.com/wbuf81/oscar/internal/settings"
)

// Orchestrator runs page scans end to end: matching, banner detection,
// scoring, history persistence, and the optional deep-scan pass.
type Orchestrator struct {
	catalog *catalog.Catalog
	matcher *linkmatch.Matcher
	banner  *banner.Detector
	deep    *deepscan.Scanner
	history *history.Store
	weights compliance.Weights
	custom  []compliance.Category
}

// New wires an Orchestrator from its parts. The settings decide which
// categories are enabled, their weights, and any custom checklist items.
func New(c *catalog.Catalog, cfg settings.Settings, hist *history.Store, fetcher deepscan.Fetcher) *Orchestrator {
	return &Orchestrator{
		catalog: c,
		matcher: linkmatch.New(c, linkmatch.WithCustomCategories(cfg.CustomKeywords())),
		banner:  banner.New(c),
		deep:    deepscan.NewScanner(c, fetcher),
		history: hist,
		weights: cfg.Weights(c),
		custom:  cfg.CustomCategories(),
	}
}

// Scan runs the link and banner pass over the snapshot, scores the result,
// appends it to history, and returns the record.
func (o *Orchestrator) Scan(snap page.Snapshot) compliance.ScanRecord {
	language := o.catalog.NormalizeLanguage(snap.Language)

	results := compliance.ResultSet{}
	documentLinks := map[compliance.Category]string{}

	for _, cat := range o.scanCategories() {
		if cat == compliance.CategoryCookieBanner {
			results[cat] = o.banner.Detect(snap).Entry()
			continue
		}

		match := o.matcher.FindBestMatch(snap.Links, cat, language)
		results[cat] = match.Entry()

		if match.Found && match.URL != "" {
			documentLinks[cat] = match.URL
		}
	}

	rec := compliance.ScanRecord{
		ID:         newScanID(),
		URL:        snap.URL,
		Title:      snap.Title,
		Language:   language,
		ScannedAt:  time.Now().UTC(),
		Compliance: results,
		Score:      score.Compute(results, o.weights),
	}

	if len(documentLinks) > 0 {
		rec.DocumentLinks = documentLinks
	}

	if info, err := domain.FromURL(snap.URL); err == nil {
		rec.DomainInfo = info
	} else {
		log.Debug().Err(err).Str("url", snap.URL).Msg("domain parse failed")
	}

	o.history.Append(rec)

	log.Info().
		Str("url", snap.URL).
		Str("language", language).
		Int("score", rec.Score).
		Int("links", len(snap.Links)).
		Msg("page scanned")

	return rec
}

// ScanAll scans multiple snapshots sequentially, preserving input order.
// Sequential on purpose: compare scans are small batches and ordered output
// matters more than latency here.
func (o *Orchestrator) ScanAll(snaps []page.Snapshot) []compliance.ScanRecord {
	records := make([]compliance.ScanRecord, 0, len(snaps))
	for _, snap := range snaps {
		records = append(records, o.Scan(snap))
	}

	return records
}

// MissingDeepScanCategories returns the deep-scannable categories the record
// has not yet found.
func (o *Orchestrator) MissingDeepScanCategories(rec compliance.ScanRecord) []compliance.Category {
	return lo.Filter(o.catalog.DeepScanCategories(), func(cat compliance.Category, _ int) bool {
		return !rec.Compliance.Found(cat)
	})
}

// CanDeepScan reports whether a deep scan could make progress on the record:
// it has discovered documents and at least one missing deep-scannable
// category.
func (o *Orchestrator) CanDeepScan(rec compliance.ScanRecord) bool {
	return len(rec.DocumentLinks) > 0 && len(o.MissingDeepScanCategories(rec)) > 0
}

// DeepScan fetches the record's discovered documents, searches them for the
// missing categories, merges findings into the record, rescores it, and
// updates history in place. The updated record is returned.
func (o *Orchestrator) DeepScan(ctx context.Context, recordID string) (compliance.ScanRecord, error) {
	rec, err := o.history.Get(recordID)
	if err != nil {
		return compliance.ScanRecord{}, err
	}

	missing := o.MissingDeepScanCategories(rec)

	updates, summary, err := o.deep.Scan(ctx, rec.DocumentLinks, missing)
	if err != nil {
		return compliance.ScanRecord{}, err
	}

	newlyFound := rec.Compliance.Merge(updates)
	rec.Score = score.Compute(rec.Compliance, o.weights)
	rec.DeepScan = &summary

	if err := o.history.Replace(rec); err != nil {
		return compliance.ScanRecord{}, fmt.Errorf("updating scan record: %w", err)
	}

	log.Info().
		Str("record", rec.ID).
		Int("documents_scanned", len(summary.ScannedDocuments)).
		Int("newly_found", len(newlyFound)).
		Int("score", rec.Score).
		Msg("deep scan complete")

	return rec, nil
}

// scanCategories returns the enabled built-in categories in catalog order,
// followed by enabled custom categories.
func (o *Orchestrator) scanCategories() []compliance.Category {
	cats := lo.Filter(o.catalog.Categories(), func(cat compliance.Category, _ int) bool {
		w, ok := o.weights[cat]
		return ok && w.Enabled
	})

	return append(cats, o.custom...)
}

// newScanID returns a unique-enough record id. Nanosecond resolution keeps
// ids distinct within a sequential compare scan.
func newScanID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
