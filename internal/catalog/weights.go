package catalog

import "github.com/wbuf81/oscar/internal/compliance"

// defaultWeights is the built-in scoring table, used when no user settings
// override it. Every category starts enabled.
var defaultWeights = compliance.Weights{
	// Privacy & data protection
	compliance.CategoryPrivacyPolicy: {Enabled: true, Weight: 22},
	compliance.CategoryDoNotSell:     {Enabled: true, Weight: 15},
	compliance.CategoryDataRequest:   {Enabled: true, Weight: 8},
	// Cookie compliance
	compliance.CategoryCookieBanner:   {Enabled: true, Weight: 18},
	compliance.CategoryCookiePolicy:   {Enabled: true, Weight: 13},
	compliance.CategoryCookieSettings: {Enabled: true, Weight: 10},
	// Legal disclosures
	compliance.CategoryTermsOfService: {Enabled: true, Weight: 9},
	compliance.CategoryLegal:          {Enabled: true, Weight: 8},
	compliance.CategoryDispute:        {Enabled: true, Weight: 3},
	compliance.CategoryContact:        {Enabled: true, Weight: 5},
	// Consumer protection
	compliance.CategoryRefundPolicy:    {Enabled: true, Weight: 7},
	compliance.CategoryShippingPolicy:  {Enabled: true, Weight: 5},
	compliance.CategoryAgeVerification: {Enabled: true, Weight: 6},
	// Accessibility
	compliance.CategoryAccessibility: {Enabled: true, Weight: 10},
	compliance.CategorySitemap:       {Enabled: true, Weight: 2},
	// Content & IP
	compliance.CategoryDMCA:                {Enabled: true, Weight: 1},
	compliance.CategoryReportAbuse:         {Enabled: true, Weight: 1},
	compliance.CategoryAffiliateDisclosure: {Enabled: true, Weight: 3},
	compliance.CategoryAdChoices:           {Enabled: true, Weight: 2},
	// Corporate responsibility
	compliance.CategoryModernSlavery:  {Enabled: true, Weight: 4},
	compliance.CategorySustainability: {Enabled: true, Weight: 3},
	compliance.CategorySecurityPolicy: {Enabled: true, Weight: 4},
	// ICANN & registry compliance
	compliance.CategoryWhoisRDAP:      {Enabled: true, Weight: 5},
	compliance.CategoryDomainAbuse:    {Enabled: true, Weight: 4},
	compliance.CategoryUDRP:           {Enabled: true, Weight: 3},
	compliance.CategoryRegistrarInfo:  {Enabled: true, Weight: 3},
	compliance.CategoryTransferPolicy: {Enabled: true, Weight: 2},
}
