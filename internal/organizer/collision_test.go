package organizer

import (
	"path/filepath"
	"testing"

	"tidy/internal/testsupport"
)

func TestNextAvailablePathFreeName(t *testing.T) {
	dir := t.TempDir()
	got, err := nextAvailablePath(dir, "report.txt", map[string]struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report.txt"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathDisambiguates(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "report.txt"), "taken")
	testsupport.WriteFile(t, filepath.Join(dir, "report (1).txt"), "also taken")

	got, err := nextAvailablePath(dir, "report.txt", map[string]struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report (2).txt"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathHonoursClaims(t *testing.T) {
	dir := t.TempDir()
	claimed := map[string]struct{}{
		filepath.Join(dir, "report.txt"): {},
	}

	got, err := nextAvailablePath(dir, "report.txt", claimed)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report (1).txt"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextAvailablePathMissingDirIsFree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Documents")
	got, err := nextAvailablePath(dir, "report.txt", map[string]struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "report.txt"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		name string
		stem string
		ext  string
	}{
		{"report.txt", "report", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{"README", "README", ""},
	}
	for _, tc := range cases {
		stem, ext := splitName(tc.name)
		if stem != tc.stem || ext != tc.ext {
			t.Errorf("splitName(%q) = %q, %q; want %q, %q", tc.name, stem, ext, tc.stem, tc.ext)
		}
	}
}

func TestEntryExtension(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":   "jpg",
		"notes.txt":   "txt",
		".bashrc":     "",
		"README":      "",
		"archive.Zip": "zip",
	}
	for name, want := range cases {
		if got := entryExtension(name); got != want {
			t.Errorf("entryExtension(%q) = %q, want %q", name, got, want)
		}
	}
}
