package cache

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache", "responses.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("test query", "@article{x, year = {2022}}"); err != nil {
		t.Fatalf("putting: %v", err)
	}

	body, ok, err := s.Get("test query")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if body != "@article{x, year = {2022}}" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestGetMiss(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("never stored")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if ok {
		t.Error("expected a cache miss")
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("q", "old"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("q", "new"); err != nil {
		t.Fatal(err)
	}

	body, ok, err := s.Get("q")
	if err != nil || !ok {
		t.Fatalf("getting: ok=%v err=%v", ok, err)
	}
	if body != "new" {
		t.Errorf("expected replacement to win, got %q", body)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening: %v", err)
	}
	if err := s.Put("q", "body"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()

	body, ok, err := s2.Get("q")
	if err != nil || !ok {
		t.Fatalf("getting after reopen: ok=%v err=%v", ok, err)
	}
	if body != "body" {
		t.Errorf("unexpected body after reopen: %q", body)
	}
}
