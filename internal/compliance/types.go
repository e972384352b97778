// Package compliance defines the shared data model for page compliance
// scanning: categories, per-category entries, result sets, weight
// configuration, and scan records.
package compliance

import (
	"encoding/json"
	"time"
)

// Category identifies one compliance checklist item (e.g. privacyPolicy, dmca).
// Built-in categories are defined by the pattern catalog; custom categories
// carry user-defined identifiers.
type Category string

// Built-in category identifiers. The string values double as stable JSON keys
// in result sets, weight configuration, and scan history.
const (
	// Privacy & data protection
	CategoryPrivacyPolicy Category = "privacyPolicy"
	CategoryDoNotSell     Category = "doNotSell"
	CategoryDataRequest   Category = "dataRequest"
	// Cookie compliance
	CategoryCookieBanner   Category = "cookieBanner"
	CategoryCookiePolicy   Category = "cookiePolicy"
	CategoryCookieSettings Category = "cookieSettings"
	// Legal disclosures
	CategoryTermsOfService Category = "termsOfService"
	CategoryLegal          Category = "legal"
	CategoryDispute        Category = "dispute"
	CategoryContact        Category = "contact"
	// Consumer protection
	CategoryRefundPolicy    Category = "refundPolicy"
	CategoryShippingPolicy  Category = "shippingPolicy"
	CategoryAgeVerification Category = "ageVerification"
	// Accessibility
	CategoryAccessibility Category = "accessibility"
	CategorySitemap       Category = "sitemap"
	// Content & IP
	CategoryDMCA                Category = "dmca"
	CategoryReportAbuse         Category = "reportAbuse"
	CategoryAffiliateDisclosure Category = "affiliateDisclosure"
	CategoryAdChoices           Category = "adChoices"
	// Corporate responsibility
	CategoryModernSlavery  Category = "modernSlavery"
	CategorySustainability Category = "sustainability"
	CategorySecurityPolicy Category = "securityPolicy"
	// ICANN & registry compliance
	CategoryWhoisRDAP      Category = "whoisRdap"
	CategoryDomainAbuse    Category = "domainAbuse"
	CategoryUDRP           Category = "udrp"
	CategoryRegistrarInfo  Category = "registrarInfo"
	CategoryTransferPolicy Category = "transferPolicy"
)

// Banner detection methods, in decreasing order of signal strength.
const (
	MethodElementID    = "Element ID"
	MethodElementClass = "Element Class"
	MethodCMPScript    = "CMP Script"
	MethodTextPattern  = "Text Pattern"
)

// MatchResult is the outcome of matching one category against a page's link
// set. Found implies Score is set and URL is non-empty. MatchedLanguage is
// populated only when the winning match came from a fallback language rather
// than the page's detected language.
type MatchResult struct {
	Found           bool   `json:"found"`
	URL             string `json:"url,omitempty"`
	Text            string `json:"text,omitempty"`
	MatchedPattern  string `json:"matchedPattern,omitempty"`
	MatchedLanguage string `json:"matchedLanguage,omitempty"`
	Score           int    `json:"score,omitempty"`
}

// Entry converts a match result into a result-set entry.
func (m MatchResult) Entry() Entry {
	return Entry{
		Found:           m.Found,
		URL:             m.URL,
		Text:            m.Text,
		MatchedPattern:  m.MatchedPattern,
		MatchedLanguage: m.MatchedLanguage,
		Score:           m.Score,
	}
}

// BannerDetails records how a cookie banner was detected.
type BannerDetails struct {
	Method       string `json:"method,omitempty"`
	ElementID    string `json:"elementId,omitempty"`
	ElementClass string `json:"elementClass,omitempty"`
	CMP          string `json:"cmp,omitempty"`
	MatchedText  string `json:"matchedText,omitempty"`
	Language     string `json:"language,omitempty"`
}

// BannerResult is the outcome of cookie banner detection for one page.
type BannerResult struct {
	Detected bool          `json:"detected"`
	Details  BannerDetails `json:"details"`
}

// Entry converts a banner result into a result-set entry.
func (b BannerResult) Entry() Entry {
	details := b.Details

	return Entry{
		Found:   b.Detected,
		Details: &details,
	}
}

// DeepMatch is one category's outcome from a deep text search: the distinct
// phrases that hit, a confidence ratio in [0,1], and a short excerpt around
// the first match for user-facing evidence.
type DeepMatch struct {
	Found           bool     `json:"found"`
	MatchedPatterns []string `json:"matchedPatterns,omitempty"`
	MatchedText     string   `json:"matchedText,omitempty"`
	Confidence      float64  `json:"confidence"`
}

// Entry is the per-category record in a ResultSet. Historically this was
// either a bare boolean or a structured object; both wire shapes decode into
// Entry, and IsFound is the single accessor every consumer goes through.
type Entry struct {
	Found           bool           `json:"found"`
	URL             string         `json:"url,omitempty"`
	Text            string         `json:"text,omitempty"`
	MatchedPattern  string         `json:"matchedPattern,omitempty"`
	MatchedLanguage string         `json:"matchedLanguage,omitempty"`
	Score           int            `json:"score,omitempty"`
	Details         *BannerDetails `json:"details,omitempty"`

	// Deep scan provenance
	DeepScan        bool     `json:"deepScan,omitempty"`
	FoundInDocument string   `json:"foundInDocument,omitempty"`
	DocumentURL     string   `json:"documentUrl,omitempty"`
	DocumentType    string   `json:"documentType,omitempty"`
	MatchedText     string   `json:"matchedText,omitempty"`
	MatchedPatterns []string `json:"matchedPatterns,omitempty"`
	Confidence      float64  `json:"confidence,omitempty"`

	// legacy marks entries decoded from the boolean shorthand so they
	// round-trip back to a bare boolean.
	legacy bool
}

// BoolEntry returns a legacy boolean-shorthand entry carrying no metadata.
func BoolEntry(found bool) Entry {
	return Entry{Found: found, legacy: true}
}

// IsFound reports whether the category was detected, regardless of which
// representation the entry uses.
func (e Entry) IsFound() bool {
	return e.Found
}

// entryJSON mirrors Entry for object-shaped (un)marshaling without recursing
// into the custom methods.
type entryJSON struct {
	Found           bool           `json:"found"`
	URL             string         `json:"url,omitempty"`
	Text            string         `json:"text,omitempty"`
	MatchedPattern  string         `json:"matchedPattern,omitempty"`
	MatchedLanguage string         `json:"matchedLanguage,omitempty"`
	Score           int            `json:"score,omitempty"`
	Details         *BannerDetails `json:"details,omitempty"`
	DeepScan        bool           `json:"deepScan,omitempty"`
	FoundInDocument string         `json:"foundInDocument,omitempty"`
	DocumentURL     string         `json:"documentUrl,omitempty"`
	DocumentType    string         `json:"documentType,omitempty"`
	MatchedText     string         `json:"matchedText,omitempty"`
	MatchedPatterns []string       `json:"matchedPatterns,omitempty"`
	Confidence      float64        `json:"confidence,omitempty"`
}

// MarshalJSON emits the boolean shorthand for legacy entries and the full
// object otherwise.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.legacy {
		return json.Marshal(e.Found)
	}

	return json.Marshal(entryJSON{
		Found:           e.Found,
		URL:             e.URL,
		Text:            e.Text,
		MatchedPattern:  e.MatchedPattern,
		MatchedLanguage: e.MatchedLanguage,
		Score:           e.Score,
		Details:         e.Details,
		DeepScan:        e.DeepScan,
		FoundInDocument: e.FoundInDocument,
		DocumentURL:     e.DocumentURL,
		DocumentType:    e.DocumentType,
		MatchedText:     e.MatchedText,
		MatchedPatterns: e.MatchedPatterns,
		Confidence:      e.Confidence,
	})
}

// UnmarshalJSON accepts a bare boolean, a structured object, or — per the
// tolerance policy for malformed scan data — any other shape, which decodes
// as not found rather than erroring.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*e = Entry{Found: b, legacy: true}
		return nil
	}

	var obj entryJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		*e = Entry{}
		return nil
	}

	*e = Entry{
		Found:           obj.Found,
		URL:             obj.URL,
		Text:            obj.Text,
		MatchedPattern:  obj.MatchedPattern,
		MatchedLanguage: obj.MatchedLanguage,
		Score:           obj.Score,
		Details:         obj.Details,
		DeepScan:        obj.DeepScan,
		FoundInDocument: obj.FoundInDocument,
		DocumentURL:     obj.DocumentURL,
		DocumentType:    obj.DocumentType,
		MatchedText:     obj.MatchedText,
		MatchedPatterns: obj.MatchedPatterns,
		Confidence:      obj.Confidence,
	}

	return nil
}

// ResultSet maps category ids to their entries for one page at one point in
// time. Missing categories read as not found.
type ResultSet map[Category]Entry

// Found reports whether the given category was detected. Absent or malformed
// entries count as not found.
func (r ResultSet) Found(cat Category) bool {
	return r[cat].IsFound()
}

// Merge fills gaps in the result set from deep-scan findings: only categories
// currently not found are overwritten. Already-found entries are immutable.
// Returns the categories that became found, in no particular order.
func (r ResultSet) Merge(updates map[Category]Entry) []Category {
	var newlyFound []Category

	for cat, entry := range updates {
		if r.Found(cat) {
			continue
		}

		r[cat] = entry

		if entry.IsFound() {
			newlyFound = append(newlyFound, cat)
		}
	}

	return newlyFound
}

// Weight configures one category's contribution to the aggregate score.
// Disabled categories contribute to neither numerator nor denominator.
type Weight struct {
	Enabled bool `json:"enabled"`
	Weight  int  `json:"weight"`
}

// Weights maps category ids to their scoring configuration.
type Weights map[Category]Weight

// EnabledCategories returns the enabled category ids in unspecified order.
func (w Weights) EnabledCategories() []Category {
	var cats []Category

	for cat, cfg := range w {
		if cfg.Enabled {
			cats = append(cats, cat)
		}
	}

	return cats
}

// DocumentError records a single failed document fetch during deep scan.
// Failures are per-document and never abort the remaining documents.
type DocumentError struct {
	Document string `json:"document"`
	Error    string `json:"error"`
}

// DeepScanSummary describes what a deep-scan pass did: which documents were
// successfully scanned, which categories it newly found, and which documents
// failed.
type DeepScanSummary struct {
	Performed        bool            `json:"performed"`
	ScannedDocuments []Category      `json:"scannedDocuments"`
	ItemsFound       []Category      `json:"itemsFound"`
	Errors           []DocumentError `json:"errors,omitempty"`
}

// ScanRecord is one historical scan. Immutable after creation except for the
// deep-scan merge (which only fills not-found entries and rescores) and full
// deletion.
type ScanRecord struct {
	ID            string               `json:"id"`
	URL           string               `json:"url"`
	Title         string               `json:"title,omitempty"`
	Language      string               `json:"language"`
	ScannedAt     time.Time            `json:"scannedAt"`
	Compliance    ResultSet            `json:"compliance"`
	Score         int                  `json:"score"`
	DocumentLinks map[Category]string  `json:"documentLinks,omitempty"`
	DomainInfo    *DomainInfo          `json:"domainInfo,omitempty"`
	DeepScan      *DeepScanSummary     `json:"deepScanResults,omitempty"`
}

// DomainInfo carries the parsed pieces of the scanned page's host.
type DomainInfo struct {
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain,omitempty"`
	TLD       string `json:"tld"`
	SLD       string `json:"sld"`
}
