package compliance

import (
	"encoding/json"
	"testing"
)

func TestEntryUnmarshalBool(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`true`), &e); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if !e.IsFound() {
		t.Error("boolean true should decode as found")
	}

	// Boolean shorthand round-trips back to a bare boolean.
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	if string(out) != "true" {
		t.Errorf("round-trip = %s, want true", out)
	}
}

func TestEntryUnmarshalObject(t *testing.T) {
	raw := `{"found": true, "url": "https://example.com/privacy", "matchedPattern": "privacy policy", "score": 100}`

	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if !e.IsFound() || e.URL != "https://example.com/privacy" || e.Score != 100 {
		t.Errorf("entry = %+v", e)
	}

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	// Object entries stay objects on the wire.
	if out[0] != '{' {
		t.Errorf("round-trip = %s, want object", out)
	}
}

func TestEntryUnmarshalMalformed(t *testing.T) {
	for _, raw := range []string{`"yes"`, `42`, `[1,2]`, `null`} {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			t.Errorf("Unmarshal(%s) error = %v, want nil", raw, err)
		}

		if e.IsFound() {
			t.Errorf("Unmarshal(%s) decoded as found", raw)
		}
	}
}

func TestEntryDeepScanProvenance(t *testing.T) {
	e := Entry{
		Found:           true,
		DeepScan:        true,
		FoundInDocument: "Terms of Service",
		DocumentType:    "html",
		MatchedPatterns: []string{"binding arbitration"},
		Confidence:      0.5,
	}

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var back Entry
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if !back.DeepScan || back.FoundInDocument != "Terms of Service" || back.Confidence != 0.5 {
		t.Errorf("round-trip = %+v", back)
	}
}

func TestResultSetFound(t *testing.T) {
	r := ResultSet{
		CategoryPrivacyPolicy: {Found: true},
		CategoryDMCA:          {Found: false},
	}

	if !r.Found(CategoryPrivacyPolicy) {
		t.Error("present found entry")
	}

	if r.Found(CategoryDMCA) {
		t.Error("present not-found entry")
	}

	if r.Found(CategoryContact) {
		t.Error("absent category reads as not found")
	}
}

func TestResultSetMerge(t *testing.T) {
	original := Entry{Found: true, URL: "https://example.com/privacy", Score: 100}

	r := ResultSet{
		CategoryPrivacyPolicy: original,
		CategoryDispute:       {Found: false},
	}

	newlyFound := r.Merge(map[Category]Entry{
		CategoryPrivacyPolicy: {Found: true, DeepScan: true},
		CategoryDispute:       {Found: true, DeepScan: true, FoundInDocument: "Terms of Service"},
		CategoryDMCA:          {Found: false},
	})

	if len(newlyFound) != 1 || newlyFound[0] != CategoryDispute {
		t.Errorf("newlyFound = %v", newlyFound)
	}

	// Already-found entries keep their link-pass metadata.
	if got := r[CategoryPrivacyPolicy]; got.DeepScan || got.URL != original.URL {
		t.Errorf("found entry was overwritten: %+v", got)
	}

	if !r.Found(CategoryDispute) {
		t.Error("gap should be filled")
	}

	// Not-found updates still land, they just do not count as newly found.
	if _, ok := r[CategoryDMCA]; !ok {
		t.Error("not-found update should be recorded")
	}
}

func TestWeightsEnabledCategories(t *testing.T) {
	w := Weights{
		CategoryPrivacyPolicy: {Enabled: true, Weight: 22},
		CategoryDMCA:          {Enabled: false, Weight: 1},
		CategorySitemap:       {Enabled: true, Weight: 2},
	}

	cats := w.EnabledCategories()
	if len(cats) != 2 {
		t.Fatalf("enabled = %v", cats)
	}

	for _, cat := range cats {
		if cat == CategoryDMCA {
			t.Error("disabled category listed as enabled")
		}
	}
}

func TestScanRecordJSONKeys(t *testing.T) {
	rec := ScanRecord{
		ID:       "1",
		URL:      "https://example.com/",
		Language: "en",
		Compliance: ResultSet{
			CategoryPrivacyPolicy: {Found: true},
		},
		Score:    54,
		DeepScan: &DeepScanSummary{Performed: true},
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	for _, key := range []string{"id", "url", "language", "compliance", "score", "deepScanResults"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, out)
		}
	}
}
