// Package domain derives registrable-domain information from scanned page
// URLs for attachment to scan records.
package domain

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/wbuf81/oscar/internal/compliance"
)

// FromURL parses a page URL and splits its host into registrable domain
// pieces using the public suffix list.
func FromURL(pageURL string) (*compliance.DomainInfo, error) {
	host := strings.ToLower(strings.TrimSpace(pageURL))

	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}

		host = u.Hostname()
	} else if idx := strings.IndexAny(host, "/?#"); idx != -1 {
		host = host[:idx]
	}

	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	if host == "" || !strings.Contains(host, ".") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, host)
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}

	tld, _ := publicsuffix.PublicSuffix(host)
	sld := strings.TrimSuffix(etld1, "."+tld)

	subdomain := ""
	if etld1 != host {
		subdomain = strings.TrimSuffix(host, "."+etld1)
	}

	return &compliance.DomainInfo{
		Domain:    host,
		Subdomain: subdomain,
		TLD:       tld,
		SLD:       sld,
	}, nil
}
