package authors

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bibfix/bibfix/internal/bib"
)

func TestCanonicalList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"comma form",
			"Doe, John and Smith, Jane",
			[]string{"John Doe", "Jane Smith"},
		},
		{
			"space form",
			"John Doe and Jane Smith",
			[]string{"John Doe", "Jane Smith"},
		},
		{
			"diacritics transliterated",
			"José Niño",
			[]string{"Jose Nino"},
		},
		{
			"truncation marker dropped",
			"John Doe and others",
			[]string{"John Doe"},
		},
		{
			"ties become spaces",
			"Jan~van~Eck",
			[]string{"Jan van Eck"},
		},
		{
			"particles stay with surname",
			"Vincent van Gogh",
			[]string{"Vincent van Gogh"},
		},
		{
			"middle initials kept",
			"Doe, John A.",
			[]string{"John A. Doe"},
		},
		{
			"single word is a surname",
			"Aristotle",
			[]string{"Aristotle"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalList(tt.in)
			if err != nil {
				t.Fatalf("CanonicalList(%q): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalListEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "and others"} {
		if _, err := CanonicalList(in); !errors.Is(err, ErrNoAuthors) {
			t.Errorf("CanonicalList(%q): expected ErrNoAuthors, got %v", in, err)
		}
	}
}

func TestCanonicalMissingField(t *testing.T) {
	e := &bib.Entry{Type: "article", Key: "x", Title: "No Authors Here"}
	got, err := Canonical(e)
	if !errors.Is(err, ErrNoAuthors) {
		t.Fatalf("expected ErrNoAuthors, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty author list, got %v", got)
	}
}

func TestCanonicalOrderIrrelevantForComparison(t *testing.T) {
	// Both orderings canonicalize to the same set of names.
	a, err := CanonicalList("Doe, John and Smith, Jane")
	if err != nil {
		t.Fatal(err)
	}
	b, err := CanonicalList("Smith, Jane and Doe, John")
	if err != nil {
		t.Fatal(err)
	}

	set := make(map[string]bool)
	for _, n := range a {
		set[n] = true
	}
	for _, n := range b {
		if !set[n] {
			t.Errorf("name %q missing from first ordering", n)
		}
	}
}
