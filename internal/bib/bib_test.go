package bib

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleBib = `@article{doe2022test,
  author = {John Doe and Jane Smith},
  title = {A Test Entry},
  journal = {Test Journal},
  year = {2022},
  pages = {1-10},
  url = {https://example.org/paper}
}

@inproceedings{smith2021proc,
  author = {Jane Smith},
  title = {Proceedings Paper},
  booktitle = {Proceedings of Testing},
  year = {2021}
}
`

func TestParseString(t *testing.T) {
	entries, err := ParseString(sampleBib)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Type != "article" {
		t.Errorf("expected type article, got %q", first.Type)
	}
	if first.Key != "doe2022test" {
		t.Errorf("expected key doe2022test, got %q", first.Key)
	}
	if first.Author != "John Doe and Jane Smith" {
		t.Errorf("unexpected author: %q", first.Author)
	}
	if first.Year != "2022" {
		t.Errorf("unexpected year: %q", first.Year)
	}

	second := entries[1]
	if second.Booktitle != "Proceedings of Testing" {
		t.Errorf("unexpected booktitle: %q", second.Booktitle)
	}
}

func TestRoundTripPreservesCount(t *testing.T) {
	entries, err := ParseString(sampleBib)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	for _, pretty := range []bool{true, false} {
		out := Render(entries, WriteOptions{Pretty: pretty})
		again, err := ParseString(out)
		if err != nil {
			t.Fatalf("re-parsing rendered output (pretty=%v): %v", pretty, err)
		}
		if len(again) != len(entries) {
			t.Errorf("pretty=%v: entry count changed: %d != %d", pretty, len(again), len(entries))
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	entries, err := ParseString(sampleBib)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "test.bib")
	if err := Save(path, entries, WriteOptions{Pretty: true}); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("expected 2 entries after reload, got %d", len(loaded))
	}
	if loaded[0].Key != "doe2022test" {
		t.Errorf("citation key lost on round trip: %q", loaded[0].Key)
	}
}

func TestRenderSortBy(t *testing.T) {
	entries, err := ParseString(sampleBib)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	out := Render(entries, WriteOptions{SortBy: []string{"year"}})
	sorted, err := ParseString(out)
	if err != nil {
		t.Fatalf("re-parsing: %v", err)
	}
	if sorted[0].Key != "smith2021proc" {
		t.Errorf("expected 2021 entry first after sort, got %q", sorted[0].Key)
	}

	// Sorting never mutates the caller's slice.
	if entries[0].Key != "doe2022test" {
		t.Error("input order mutated by Render")
	}
}

func TestEntryFieldAccess(t *testing.T) {
	e := &Entry{}
	e.Set("title", "A Title")
	e.Set("volume", "12") // not a named field

	if e.Get("title") != "A Title" {
		t.Errorf("Get(title) = %q", e.Get("title"))
	}
	if e.Title != "A Title" {
		t.Error("Set did not populate the named field")
	}
	if e.Get("volume") != "12" {
		t.Error("extra field lost")
	}
	if !e.Has("volume") || e.Has("pages") {
		t.Error("Has misreports populated fields")
	}

	e.Delete("volume")
	if e.Has("volume") {
		t.Error("Delete left extra field behind")
	}
}

func TestEntryFieldNamesOrder(t *testing.T) {
	e := &Entry{Title: "T", Author: "A", Year: "2020"}
	e.Set("volume", "3")
	e.Set("isbn", "123")

	want := []string{"author", "title", "year", "isbn", "volume"}
	if got := e.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames = %v, want %v", got, want)
	}
	if e.FieldCount() != 5 {
		t.Errorf("FieldCount = %d, want 5", e.FieldCount())
	}
}

func TestEntryClone(t *testing.T) {
	e := &Entry{Key: "k", Title: "T"}
	e.Set("volume", "1")

	c := e.Clone()
	c.Title = "changed"
	c.Set("volume", "2")

	if e.Title != "T" || e.Get("volume") != "1" {
		t.Error("Clone shares state with the original")
	}
}

func TestClean(t *testing.T) {
	e := &Entry{Title: "Unbalanced {Brace", Author: "someone@example"}
	repaired := Clean(e)

	if e.Title != "Unbalanced Brace" {
		t.Errorf("unbalanced braces not stripped: %q", e.Title)
	}
	if len(repaired) != 1 || repaired[0] != "title" {
		t.Errorf("expected title reported as repaired, got %v", repaired)
	}
	if e.Author != "someone at example" {
		t.Errorf("@ not replaced: %q", e.Author)
	}
}

func TestCleanKeepsBalancedBraces(t *testing.T) {
	e := &Entry{Title: "{T}est {T}itle"}
	if repaired := Clean(e); len(repaired) != 0 {
		t.Errorf("balanced braces reported as repaired: %v", repaired)
	}
	if e.Title != "{T}est {T}itle" {
		t.Errorf("balanced braces altered: %q", e.Title)
	}
}
