package catalog

// bannerPatterns are the cookie banner signatures: element ids and class
// fragments used by common banner markup, CMP vendor script hosts, and short
// consent phrases per language. Text languages are listed with English first;
// detection walks them in order.
var bannerPatterns = BannerPatterns{
	IDs: []string{
		"cookie-banner", "cookie-notice", "cookie-consent", "cookiebanner",
		"cookienotice", "gdpr-banner", "privacy-banner", "onetrust-banner",
		"cookiebot", "consent-banner", "CybotCookiebotDialog",
	},
	Classes: []string{
		"cookie-banner", "cookie-notice", "cookie-consent", "gdpr-banner",
		"privacy-notice", "consent-overlay", "cookie-popup", "cookie-bar",
		"cc-banner", "cookiealert", "cmp-container",
	},
	Scripts: []string{
		"onetrust", "cookiebot", "cookielaw", "cookieconsent",
		"quantcast", "trustarc", "usercentrics", "didomi", "cookiepro", "iubenda",
	},
	Text: []BannerTextPatterns{
		{Language: "en", Phrases: []string{"we use cookies", "this website uses cookies", "cookie consent", "accept cookies", "accept all cookies"}},
		{Language: "es", Phrases: []string{"usamos cookies", "este sitio usa cookies", "aceptar cookies"}},
		{Language: "fr", Phrases: []string{"nous utilisons des cookies", "ce site utilise des cookies", "accepter les cookies"}},
		{Language: "de", Phrases: []string{"wir verwenden cookies", "diese website verwendet cookies", "cookies akzeptieren"}},
		{Language: "nl", Phrases: []string{"we gebruiken cookies", "deze website gebruikt cookies", "cookies accepteren"}},
		{Language: "pt", Phrases: []string{"usamos cookies", "este site usa cookies", "aceitar cookies"}},
	},
}
