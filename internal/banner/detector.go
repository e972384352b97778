// Package banner detects cookie consent banners from a page snapshot. The
// checks run in decreasing order of signal strength: known element ids, known
// class names, CMP vendor scripts, then consent phrases in the body text. The
// first hit wins and records how the banner was identified.
package banner

import (
	"strings"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
	"github.com/wbuf81/oscar/internal/page"
)

// Detector checks page snapshots for cookie banner evidence.
type Detector struct {
	catalog *catalog.Catalog
}

// New returns a Detector over the given catalog.
func New(c *catalog.Catalog) *Detector {
	return &Detector{catalog: c}
}

// Detect reports whether the snapshot shows a cookie banner and how it was
// found.
func (d *Detector) Detect(snap page.Snapshot) compliance.BannerResult {
	patterns := d.catalog.Banner()

	// Element ids are matched exactly: banner ids are distinctive enough that
	// substring matching would only add noise.
	ids := map[string]bool{}
	for _, id := range snap.ElementIDs {
		ids[id] = true
	}

	for _, id := range patterns.IDs {
		if ids[id] {
			return compliance.BannerResult{
				Detected: true,
				Details: compliance.BannerDetails{
					Method:    compliance.MethodElementID,
					ElementID: id,
				},
			}
		}
	}

	classes := map[string]bool{}
	for _, class := range snap.ElementClasses {
		classes[class] = true
	}

	for _, class := range patterns.Classes {
		if classes[class] {
			return compliance.BannerResult{
				Detected: true,
				Details: compliance.BannerDetails{
					Method:       compliance.MethodElementClass,
					ElementClass: class,
				},
			}
		}
	}

	// CMP scripts match by substring: vendor hosts embed the product name
	// anywhere in the src URL.
	for _, src := range snap.ScriptSources {
		srcLower := strings.ToLower(src)
		for _, cmp := range patterns.Scripts {
			if strings.Contains(srcLower, cmp) {
				return compliance.BannerResult{
					Detected: true,
					Details: compliance.BannerDetails{
						Method: compliance.MethodCMPScript,
						CMP:    cmp,
					},
				}
			}
		}
	}

	bodyLower := strings.ToLower(snap.BodyText)
	if bodyLower != "" {
		for _, langPatterns := range patterns.Text {
			for _, phrase := range langPatterns.Phrases {
				if strings.Contains(bodyLower, phrase) {
					return compliance.BannerResult{
						Detected: true,
						Details: compliance.BannerDetails{
							Method:      compliance.MethodTextPattern,
							MatchedText: phrase,
							Language:    langPatterns.Language,
						},
					}
				}
			}
		}
	}

	return compliance.BannerResult{}
}
