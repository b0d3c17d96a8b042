package ir

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSystem() *System {
	s := New("the a of")
	s.IndexDocument("RM(1) manual\nrm removes each specified file", "man/rm.txt")
	s.IndexDocument("CP(1) manual\ncp copies a source file to a target file", "man/cp.txt")
	s.IndexDocument("WC(1) manual\nwc prints word counts for each file", "man/wc.txt")
	return s
}

func TestQueryRanking(t *testing.T) {
	s := newTestSystem()

	results := s.Query("copies a file", 10)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if got := s.Document(results[0].DocID).URL; got != "man/cp.txt" {
		t.Errorf("best match = %s, want man/cp.txt", got)
	}
	if results[0].Score <= 0 {
		t.Errorf("score = %v, want > 0", results[0].Score)
	}
}

func TestQueryLimit(t *testing.T) {
	s := newTestSystem()
	if got := s.Query("file", 2); len(got) != 2 {
		t.Errorf("Query returned %d results, want 2", len(got))
	}
}

func TestQueryStopwordsOnly(t *testing.T) {
	s := newTestSystem()
	if got := s.Query("the a of", 10); got != nil {
		t.Errorf("stopword-only query = %v, want nil", got)
	}
}

func TestQueryUnknownWord(t *testing.T) {
	s := newTestSystem()
	if got := s.Query("zebra", 10); len(got) != 0 {
		t.Errorf("unknown word matched %d documents", len(got))
	}
}

func TestStopwordsNotIndexed(t *testing.T) {
	s := New("the")
	s.IndexDocument("the title\nthe the the word", "doc")
	if got := s.Query("word", 5); len(got) != 1 {
		t.Fatalf("Query(word) = %v", got)
	}
	// "the" was never indexed even though it dominates the text.
	if got := s.Query("the word", 5); len(got) != 1 {
		t.Errorf("stopword in query changed the result: %v", got)
	}
}

func TestDocumentMetadata(t *testing.T) {
	s := newTestSystem()
	doc := s.Document(0)
	if doc.Title != "RM(1) manual" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.NumWords == 0 {
		t.Error("NumWords not recorded")
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestIndexCollection(t *testing.T) {
	dir := t.TempDir()
	paths := []string{}
	for name, text := range map[string]string{
		"one.txt": "First Document\nalpha beta gamma",
		"two.txt": "Second Document\nbeta delta",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	s := New("")
	if err := s.IndexCollection(paths); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if got := s.Query("alpha", 5); len(got) != 1 {
		t.Errorf("Query(alpha) = %v", got)
	}

	if err := s.IndexCollection([]string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("missing file should error")
	}
}
