package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wbuf81/oscar/internal/compliance"
)

func record(id string) compliance.ScanRecord {
	return compliance.ScanRecord{
		ID:        id,
		URL:       "https://example.com",
		Language:  "en",
		ScannedAt: time.Now().UTC(),
		Compliance: compliance.ResultSet{
			compliance.CategoryPrivacyPolicy: compliance.BoolEntry(true),
		},
		Score: 54,
	}
}

func TestAppendNewestFirst(t *testing.T) {
	s := New()

	s.Append(record("a"))
	s.Append(record("b"))
	s.Append(record("c"))

	got := s.List()
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}

	if got[0].ID != "c" || got[2].ID != "a" {
		t.Errorf("order = %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestAppendTrimsToCap(t *testing.T) {
	s := New(WithMaxRecords(3))

	for i := 0; i < 5; i++ {
		s.Append(record(fmt.Sprintf("r%d", i)))
	}

	got := s.List()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Newest retained, oldest dropped.
	if got[0].ID != "r4" || got[2].ID != "r2" {
		t.Errorf("retained = %s..%s", got[0].ID, got[2].ID)
	}
}

func TestGetAndDelete(t *testing.T) {
	s := New()
	s.Append(record("a"))
	s.Append(record("b"))

	rec, err := s.Get("a")
	if err != nil || rec.ID != "a" {
		t.Fatalf("Get(a) = %+v, %v", rec, err)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete(a) error = %v", err)
	}

	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	if err := s.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}

	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	s := New()
	s.Append(record("a"))
	s.Append(record("b"))

	updated := record("a")
	updated.Score = 99

	if err := s.Replace(updated); err != nil {
		t.Fatalf("Replace error = %v", err)
	}

	got := s.List()
	if got[1].ID != "a" || got[1].Score != 99 {
		t.Errorf("record a = %+v", got[1])
	}

	if err := s.Replace(record("zzz")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace missing = %v, want ErrNotFound", err)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Append(record("a"))
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len after clear = %d", s.Len())
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Append(record("a"))

	list := s.List()
	list[0].ID = "mutated"

	if got, _ := s.Get("a"); got.ID != "a" {
		t.Error("mutating the returned list leaked into the store")
	}
}

func TestFilePersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s := New(WithStorageFile(path))
	s.Append(record("a"))
	s.Append(record("b"))

	reloaded := New(WithStorageFile(path))

	got := reloaded.List()
	if len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("reloaded = %+v", got)
	}

	if !got[0].Compliance.Found(compliance.CategoryPrivacyPolicy) {
		t.Error("compliance entries lost in round trip")
	}
}

func TestMalformedStorageFileToleratedAtLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(WithStorageFile(path))
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 on malformed file", s.Len())
	}

	// The store still works and overwrites the bad file.
	s.Append(record("a"))

	reloaded := New(WithStorageFile(path))
	if reloaded.Len() != 1 {
		t.Errorf("reloaded Len = %d, want 1", reloaded.Len())
	}
}
