package catalog

import (
	"time"

	"github.com/wbuf81/oscar/internal/compliance"
)

// deepScanPatterns configure the document body search for the categories that
// commonly live inside terms, privacy, and legal documents rather than behind
// dedicated links.
var deepScanPatterns = map[compliance.Category]DeepScanConfig{
	compliance.CategoryDMCA: {
		Label: "DMCA / Copyright",
		Patterns: []string{
			"digital millennium copyright act",
			"dmca agent",
			"dmca notice",
			"dmca policy",
			"dmca takedown",
			"dmca designated agent",
			"copyright infringement",
			"report copyright",
			"copyright complaint",
			"copyright notice",
			"copyright agent",
			"designated agent for copyright",
			"notice of infringement",
			"infringing material",
			"counter-notification",
			"counter notification",
			"we respond to notices of alleged copyright infringement",
			"repeat infringer policy",
			"17 u.s.c. 512",
			"section 512",
		},
		MinMatches: 2,
	},
	compliance.CategoryDispute: {
		Label: "Dispute Resolution",
		Patterns: []string{
			"binding arbitration",
			"arbitration agreement",
			"arbitration provision",
			"arbitration clause",
			"arbitration proceedings",
			"american arbitration association",
			"aaa arbitration",
			"jams arbitration",
			"class action waiver",
			"waive class action",
			"waiver of class",
			"no class actions",
			"class arbitration waiver",
			"class-wide arbitration",
			"dispute resolution",
			"resolving disputes",
			"informal dispute resolution",
			"mandatory arbitration",
			"opt-out of arbitration",
			"exclusive jurisdiction",
			"governing law",
			"choice of law",
			"venue for disputes",
		},
		MinMatches: 2,
	},
	compliance.CategoryReportAbuse: {
		Label: "Report Abuse",
		Patterns: []string{
			"report abuse",
			"report abusive",
			"abuse report",
			"content removal request",
			"report violation",
			"report inappropriate",
			"flag content",
			"report content",
			"report user",
			"trust and safety",
			"community guidelines violation",
			"report a problem",
			"report illegal content",
			"report harmful content",
		},
		MinMatches: 1,
	},
	compliance.CategoryDoNotSell: {
		Label: "Do Not Sell (CCPA)",
		Patterns: []string{
			"do not sell my personal information",
			"do not sell or share",
			"opt out of sale",
			"ccpa rights",
			"california consumer privacy act",
			"california privacy rights",
			"right to opt out",
			"opt-out of the sale",
			"shine the light",
			"california residents",
			"ccpa opt-out",
			"sale of personal information",
			"sharing of personal information",
			"we do not sell your personal information",
		},
		MinMatches: 1,
	},
	compliance.CategoryPrivacyPolicy: {
		Label: "Privacy Policy",
		Patterns: []string{
			"privacy policy",
			"privacy notice",
			"privacy statement",
			"data protection policy",
			"how we collect your information",
			"information we collect",
			"personal data we process",
			"data controller",
			"data processor",
			"gdpr compliance",
			"data protection rights",
		},
		MinMatches: 2,
	},
	compliance.CategoryCookiePolicy: {
		Label: "Cookie Policy",
		Patterns: []string{
			"cookie policy",
			"use of cookies",
			"cookies we use",
			"types of cookies",
			"first-party cookies",
			"third-party cookies",
			"session cookies",
			"persistent cookies",
			"cookie consent",
			"manage cookies",
			"cookie settings",
		},
		MinMatches: 2,
	},
	compliance.CategoryDataRequest: {
		Label: "Data Request",
		Patterns: []string{
			"data subject request",
			"access your data",
			"request your data",
			"right to access",
			"right to rectification",
			"right to erasure",
			"right to be forgotten",
			"data portability",
			"download your data",
			"export your data",
			"request data deletion",
			"delete my account",
			"data subject rights",
		},
		MinMatches: 1,
	},
	compliance.CategoryAccessibility: {
		Label: "Accessibility",
		Patterns: []string{
			"accessibility statement",
			"accessibility policy",
			"wcag compliance",
			"ada compliance",
			"screen reader",
			"assistive technology",
			"accessibility features",
			"accessible to all users",
			"section 508",
			"web accessibility",
		},
		MinMatches: 2,
	},
	compliance.CategoryRefundPolicy: {
		Label: "Refund Policy",
		Patterns: []string{
			"refund policy",
			"refund request",
			"money back guarantee",
			"return policy",
			"cancellation policy",
			"how to request a refund",
			"refund eligibility",
			"full refund",
			"partial refund",
			"refund within",
		},
		MinMatches: 2,
	},
	compliance.CategoryContact: {
		Label: "Contact Information",
		Patterns: []string{
			"contact us",
			"contact information",
			"customer support",
			"customer service",
			"support email",
			"support phone",
			"reach us at",
			"get in touch",
			"send us a message",
		},
		MinMatches: 2,
	},
}

// documentPriority orders discovered document links for fetching. The dense
// legal documents come first so the document budget is spent where embedded
// compliance language is most likely.
var documentPriority = []compliance.Category{
	compliance.CategoryTermsOfService,
	compliance.CategoryPrivacyPolicy,
	compliance.CategoryLegal,
	compliance.CategoryCookiePolicy,
	compliance.CategoryDMCA,
	compliance.CategoryDispute,
	compliance.CategoryAccessibility,
	compliance.CategoryRefundPolicy,
	compliance.CategorySecurityPolicy,
	compliance.CategoryModernSlavery,
	compliance.CategorySustainability,
	compliance.CategoryWhoisRDAP,
	compliance.CategoryDomainAbuse,
	compliance.CategoryUDRP,
	compliance.CategoryRegistrarInfo,
	compliance.CategoryTransferPolicy,
	compliance.CategoryDataRequest,
	compliance.CategoryContact,
	compliance.CategoryShippingPolicy,
	compliance.CategoryAgeVerification,
	compliance.CategorySitemap,
	compliance.CategoryAffiliateDisclosure,
	compliance.CategoryAdChoices,
	compliance.CategoryReportAbuse,
	compliance.CategoryDoNotSell,
	compliance.CategoryCookieSettings,
}

// documentLabels are short attribution names for the documents a deep scan
// reads, shown as the provenance of an embedded finding.
var documentLabels = map[compliance.Category]string{
	compliance.CategoryPrivacyPolicy:       "Privacy Policy",
	compliance.CategoryDoNotSell:           "Do Not Sell (CCPA)",
	compliance.CategoryDataRequest:         "Data Request",
	compliance.CategoryCookiePolicy:        "Cookie Policy",
	compliance.CategoryCookieSettings:      "Cookie Settings",
	compliance.CategoryTermsOfService:      "Terms of Service",
	compliance.CategoryLegal:               "Legal Page",
	compliance.CategoryDispute:             "Dispute Resolution",
	compliance.CategoryContact:             "Contact",
	compliance.CategoryRefundPolicy:        "Refund Policy",
	compliance.CategoryShippingPolicy:      "Shipping Policy",
	compliance.CategoryAgeVerification:     "Age Verification",
	compliance.CategoryAccessibility:       "Accessibility",
	compliance.CategorySitemap:             "Sitemap",
	compliance.CategoryDMCA:                "DMCA / Copyright",
	compliance.CategoryReportAbuse:         "Report Abuse",
	compliance.CategoryAffiliateDisclosure: "Affiliate Disclosure",
	compliance.CategoryAdChoices:           "Ad Choices",
	compliance.CategoryModernSlavery:       "Modern Slavery",
	compliance.CategorySustainability:      "Sustainability",
	compliance.CategorySecurityPolicy:      "Security Policy",
	compliance.CategoryWhoisRDAP:           "WHOIS / RDAP",
	compliance.CategoryDomainAbuse:         "Domain Abuse",
	compliance.CategoryUDRP:                "UDRP / Disputes",
	compliance.CategoryRegistrarInfo:       "Registrar Info",
	compliance.CategoryTransferPolicy:      "Transfer Policy",
}

var defaultLimits = Limits{
	MaxDocuments:  10,
	FetchTimeout:  5 * time.Second,
	MaxTextLength: 200000,
	MaxPDFPages:   50,
}
