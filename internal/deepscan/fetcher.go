package deepscan

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/projectdiscovery/httpx/common/httpx"

	"github.com/wbuf81/oscar/internal/catalog"
)

// Document type identifiers recorded on deep-scan findings.
const (
	DocumentTypeHTML = "html"
	DocumentTypePDF  = "pdf"
)

// defaultMaxRedirects caps redirect hops when fetching documents.
const defaultMaxRedirects = 5

// defaultUserAgent identifies document fetches to origin servers.
const defaultUserAgent = "Mozilla/5.0 (compatible; Oscar/1.0)"

// Document is one fetched document's extracted plain text.
type Document struct {
	Text string
	Type string
}

// Fetcher retrieves a document and extracts its text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

// HTTPFetcher fetches documents over HTTP with bounded timeout, redirects,
// and response size, then extracts text per content kind.
type HTTPFetcher struct {
	client *httpx.HTTPX
	limits catalog.Limits
}

// NewHTTPFetcher returns a fetcher bounded by the given limits.
func NewHTTPFetcher(limits catalog.Limits) (*HTTPFetcher, error) {
	client, err := httpx.New(&httpx.Options{
		Timeout:                   limits.FetchTimeout,
		FollowRedirects:           true,
		MaxRedirects:              defaultMaxRedirects,
		MaxResponseBodySizeToRead: int64(limits.MaxTextLength),
		DefaultUserAgent:          defaultUserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("creating httpx client: %w", err)
	}

	return &HTTPFetcher{client: client, limits: limits}, nil
}

// Fetch retrieves the URL and returns its extracted text. Non-200 responses
// are errors; a fetched document with no extractable text returns an empty
// Document and no error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Document, error) {
	req, err := f.client.NewRequestWithContext(ctx, http.MethodGet, url)
	if err != nil {
		return Document{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req, httpx.UnsafeOptions{})
	if err != nil {
		return Document{}, fmt.Errorf("fetching document: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if isPDF(url, resp.Data) {
		return Document{
			Text: extractPDFText(resp.Data, f.limits.MaxPDFPages, f.limits.MaxTextLength),
			Type: DocumentTypePDF,
		}, nil
	}

	return Document{
		Text: extractHTMLText(string(resp.Data), f.limits.MaxTextLength),
		Type: DocumentTypeHTML,
	}, nil
}

// isPDF detects PDF documents by URL suffix or magic bytes.
func isPDF(url string, body []byte) bool {
	if strings.HasSuffix(strings.ToLower(url), ".pdf") {
		return true
	}

	return len(body) >= 4 && string(body[:4]) == "%PDF"
}
