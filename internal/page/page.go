// Package page defines the page snapshot contract: the flattened view of a
// rendered page that callers submit for scanning. Producing the snapshot is
// the caller's job; everything downstream operates on this struct alone.
package page

import "strings"

// Link is one anchor extracted from a page. Href should be absolute.
type Link struct {
	Href      string `json:"href"`
	Text      string `json:"text"`
	Title     string `json:"title,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty"`
}

// FullText joins the link's visible text, title, and aria-label into the
// lowercase haystack the matcher searches. Whitespace runs collapse to single
// spaces so pattern containment checks behave across formatting differences.
func (l Link) FullText() string {
	joined := l.Text + " " + l.Title + " " + l.AriaLabel

	return strings.ToLower(strings.Join(strings.Fields(joined), " "))
}

// Snapshot is the scan input: everything the detectors need from one rendered
// page. BodyText is the visible text only, tags already stripped by the
// producer. Language is the page's declared language tag, possibly empty.
type Snapshot struct {
	URL            string   `json:"url"`
	Title          string   `json:"title,omitempty"`
	Language       string   `json:"language,omitempty"`
	Links          []Link   `json:"links"`
	ElementIDs     []string `json:"elementIds,omitempty"`
	ElementClasses []string `json:"elementClasses,omitempty"`
	ScriptSources  []string `json:"scriptSources,omitempty"`
	BodyText       string   `json:"bodyText,omitempty"`
}
