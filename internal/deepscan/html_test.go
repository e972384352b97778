package deepscan

import (
	"strings"
	"testing"
)

func TestExtractHTMLText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "plain markup",
			html: "<html><body><p>Privacy Policy</p></body></html>",
			want: "Privacy Policy",
		},
		{
			name: "strips scripts and styles",
			html: "<script>var x = 'do not sell';</script><style>.a{}</style><p>Terms</p>",
			want: "Terms",
		},
		{
			name: "strips noscript and comments",
			html: "<noscript>enable js</noscript><!-- hidden note --><div>Contact us</div>",
			want: "Contact us",
		},
		{
			name: "decodes entities",
			html: "<p>Terms &amp; Conditions &copy; 2026</p>",
			want: "Terms & Conditions © 2026",
		},
		{
			name: "collapses whitespace",
			html: "<div>\n  cookie \t policy\n</div>",
			want: "cookie policy",
		},
		{
			name: "multiline script content",
			html: "<script>\nline1\nline2\n</script>real text",
			want: "real text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractHTMLText(tt.html, 0); got != tt.want {
				t.Errorf("extractHTMLText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractHTMLTextTruncates(t *testing.T) {
	html := "<p>" + strings.Repeat("a", 100) + "</p>"

	got := extractHTMLText(html, 10)
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body []byte
		want bool
	}{
		{"pdf suffix", "https://example.com/terms.PDF", nil, true},
		{"magic bytes", "https://example.com/terms", []byte("%PDF-1.7 rest"), true},
		{"html body", "https://example.com/terms", []byte("<html>"), false},
		{"short body", "https://example.com/terms", []byte("%P"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPDF(tt.url, tt.body); got != tt.want {
				t.Errorf("isPDF() = %v, want %v", got, tt.want)
			}
		})
	}
}
