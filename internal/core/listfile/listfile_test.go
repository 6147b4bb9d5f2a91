package listfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromReader_FoldsAndSkipsBlanks(t *testing.T) {
	in := "AskScience\n\n  worldnews  \n\tPolitics\n"
	s, err := FromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	cases := []struct {
		entry string
		want  bool
	}{
		{"askscience", true},
		{"ASKSCIENCE", true},
		{"AskScience", true},
		{"worldnews", true},
		{"politics", true},
		{"funny", false},
		{"", false},
	}
	for _, c := range cases {
		if got := s.Has(c.entry); got != c.want {
			t.Fatalf("Has(%q) = %v, want %v", c.entry, got, c.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subreddits.txt")
	if err := os.WriteFile(path, []byte("testsub\nother\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Has("TestSub") || !s.Has("other") {
		t.Fatalf("unexpected set: %v", s)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromEntries(t *testing.T) {
	s := FromEntries("AutoModerator", "", "  ")
	if s.Len() != 1 || !s.Has("automoderator") {
		t.Fatalf("unexpected set: %v", s)
	}
}
