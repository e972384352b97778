package page

import "testing"

func TestLinkFullText(t *testing.T) {
	tests := []struct {
		name string
		link Link
		want string
	}{
		{
			name: "text only",
			link: Link{Text: "Privacy Policy"},
			want: "privacy policy",
		},
		{
			name: "combines text title and aria label",
			link: Link{Text: "Privacy", Title: "Our Policy", AriaLabel: "Read more"},
			want: "privacy our policy read more",
		},
		{
			name: "collapses whitespace runs",
			link: Link{Text: "  Cookie \n\t Settings  "},
			want: "cookie settings",
		},
		{
			name: "empty link",
			link: Link{},
			want: "",
		},
		{
			name: "aria label only",
			link: Link{AriaLabel: "Impressum"},
			want: "impressum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.link.FullText(); got != tt.want {
				t.Errorf("FullText() = %q, want %q", got, tt.want)
			}
		})
	}
}
