package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadValidSettings(t *testing.T) {
	path := writeSettingsFile(t, `{
		"builtinItems": {
			"privacyPolicy": {"enabled": true, "weight": 30},
			"dmca": {"enabled": false, "weight": 1}
		},
		"customItems": [
			{"id": "gdprRep", "label": "EU Representative", "keywords": ["eu representative"], "enabled": true, "weight": 5}
		]
	}`)

	s, err := Load(catalog.Default(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := s.BuiltinItems[compliance.CategoryPrivacyPolicy].Weight; got != 30 {
		t.Errorf("privacyPolicy weight = %d, want 30", got)
	}

	if len(s.CustomItems) != 1 || s.CustomItems[0].ID != "gdprRep" {
		t.Errorf("CustomItems = %+v", s.CustomItems)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(catalog.Default(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSettingsFile(t, `{not json`)

	if _, err := Load(catalog.Default(), path); err == nil {
		t.Fatal("expected error for malformed settings")
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	s := Settings{
		BuiltinItems: map[compliance.Category]BuiltinItem{
			compliance.CategoryDMCA: {Enabled: true, Weight: -1},
		},
	}

	if err := s.Validate(catalog.Default()); !errors.Is(err, ErrNegativeWeight) {
		t.Fatalf("err = %v, want ErrNegativeWeight", err)
	}
}

func TestValidateRejectsDuplicateCustomID(t *testing.T) {
	s := Settings{
		CustomItems: []CustomItem{
			{ID: "foo", Enabled: true, Weight: 1},
			{ID: "foo", Enabled: true, Weight: 2},
		},
	}

	if err := s.Validate(catalog.Default()); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}
}

func TestValidateRejectsCustomShadowingBuiltin(t *testing.T) {
	s := Settings{
		BuiltinItems: map[compliance.Category]BuiltinItem{
			compliance.CategoryPrivacyPolicy: {Enabled: true, Weight: 22},
		},
		CustomItems: []CustomItem{
			{ID: "privacyPolicy", Enabled: true, Weight: 5},
		},
	}

	if err := s.Validate(catalog.Default()); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}
}

func TestValidateRejectsBuiltinIDAbsentFromFile(t *testing.T) {
	// A partial settings file still covers the whole catalog via defaults, so
	// a custom item may not claim a built-in id the file happens to omit.
	s := Settings{
		BuiltinItems: map[compliance.Category]BuiltinItem{
			compliance.CategoryPrivacyPolicy: {Enabled: true, Weight: 22},
		},
		CustomItems: []CustomItem{
			{ID: "dmca", Label: "Takedowns", Keywords: []string{"takedown"}, Enabled: true, Weight: 50},
		},
	}

	if err := s.Validate(catalog.Default()); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}
}

func TestValidateRejectsMissingID(t *testing.T) {
	s := Settings{CustomItems: []CustomItem{{Label: "no id", Enabled: true}}}

	if err := s.Validate(catalog.Default()); !errors.Is(err, ErrMissingID) {
		t.Fatalf("err = %v, want ErrMissingID", err)
	}
}

func TestWeightsMergeOverDefaults(t *testing.T) {
	c := catalog.Default()

	s := Settings{
		BuiltinItems: map[compliance.Category]BuiltinItem{
			compliance.CategoryPrivacyPolicy: {Enabled: false, Weight: 22},
		},
		CustomItems: []CustomItem{
			{ID: "gdprRep", Enabled: true, Weight: 5},
		},
	}

	weights := s.Weights(c)

	if weights[compliance.CategoryPrivacyPolicy].Enabled {
		t.Error("privacyPolicy should be disabled by settings")
	}

	// Categories absent from the settings keep catalog defaults.
	if got := weights[compliance.CategoryCookieBanner]; !got.Enabled || got.Weight != 18 {
		t.Errorf("cookieBanner = %+v, want catalog default", got)
	}

	if got := weights["gdprRep"]; !got.Enabled || got.Weight != 5 {
		t.Errorf("gdprRep = %+v", got)
	}
}

func TestCustomKeywordsOnlyEnabled(t *testing.T) {
	s := Settings{
		CustomItems: []CustomItem{
			{ID: "a", Keywords: []string{"alpha"}, Enabled: true, Weight: 1},
			{ID: "b", Keywords: []string{"beta"}, Enabled: false, Weight: 1},
			{ID: "c", Enabled: true, Weight: 1},
		},
	}

	got := s.CustomKeywords()
	if len(got) != 1 {
		t.Fatalf("CustomKeywords() = %v", got)
	}

	if got["a"][0] != "alpha" {
		t.Errorf("keywords = %v", got["a"])
	}
}

func TestDefaultMirrorsCatalog(t *testing.T) {
	c := catalog.Default()
	s := Default(c)

	if len(s.BuiltinItems) != len(c.Categories()) {
		t.Fatalf("builtin items = %d, want %d", len(s.BuiltinItems), len(c.Categories()))
	}

	if item := s.BuiltinItems[compliance.CategoryPrivacyPolicy]; !item.Enabled || item.Weight != 22 {
		t.Errorf("privacyPolicy = %+v", item)
	}

	if err := s.Validate(c); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
}
