package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hburn/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache", "ingest.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testEntries(file string) []model.TimeEntry {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []model.TimeEntry{
		{Project: "P1", User: "Alice", DurationHours: 5, StartDate: jan10, PeriodKey: "2024-01", SourceFile: file},
		{Project: "P2", User: "Bob", DurationHours: 2.5, PeriodKey: "", SourceFile: file},
	}
}

func TestCache_SaveLoadRoundtrip(t *testing.T) {
	c := openTestCache(t)
	entries := testEntries("/data/a.csv")

	if err := c.SaveEntries("/data/a.csv", 123, 456, entries); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}

	got, err := c.LoadEntries("/data/a.csv")
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", got, entries)
	}
}

func TestCache_TrackedFiles(t *testing.T) {
	c := openTestCache(t)

	if err := c.SaveEntries("/data/a.csv", 111, 10, testEntries("/data/a.csv")); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}
	if err := c.SaveEntries("/data/b.csv", 222, 20, nil); err != nil {
		t.Fatalf("SaveEntries (empty file): %v", err)
	}

	tracked, err := c.GetTrackedFiles()
	if err != nil {
		t.Fatalf("GetTrackedFiles: %v", err)
	}
	if len(tracked) != 2 {
		t.Fatalf("tracked = %d files, want 2", len(tracked))
	}
	if fi := tracked["/data/a.csv"]; fi.MtimeNs != 111 || fi.SizeBytes != 10 {
		t.Errorf("a.csv tracking = %+v", fi)
	}
	if fi := tracked["/data/b.csv"]; fi.MtimeNs != 222 || fi.SizeBytes != 20 {
		t.Errorf("b.csv tracking = %+v", fi)
	}
}

func TestCache_SaveReplacesOldEntries(t *testing.T) {
	c := openTestCache(t)
	path := "/data/a.csv"

	if err := c.SaveEntries(path, 1, 1, testEntries(path)); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}
	replacement := []model.TimeEntry{
		{Project: "P9", DurationHours: 1, SourceFile: path},
	}
	if err := c.SaveEntries(path, 2, 2, replacement); err != nil {
		t.Fatalf("SaveEntries (replace): %v", err)
	}

	got, err := c.LoadEntries(path)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(got) != 1 || got[0].Project != "P9" {
		t.Errorf("old entries survived replacement: %+v", got)
	}
}

func TestCache_DeleteFileCascades(t *testing.T) {
	c := openTestCache(t)
	path := "/data/a.csv"

	if err := c.SaveEntries(path, 1, 1, testEntries(path)); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}
	if err := c.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}

	count, err := c.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount: %v", err)
	}
	if count != 0 {
		t.Errorf("EntryCount = %d after delete, want 0", count)
	}

	got, err := c.LoadEntries(path)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("entries survived cascade: %+v", got)
	}
}

func TestCache_LoadUnknownFileIsEmpty(t *testing.T) {
	c := openTestCache(t)
	got, err := c.LoadEntries("/data/never-saved.csv")
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries for an unknown file", len(got))
	}
}
