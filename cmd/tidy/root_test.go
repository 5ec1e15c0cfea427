package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tidy/internal/services"
	"tidy/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunOrganizesDirectory(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "photo.jpg"), "jpeg bytes")
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), "meeting notes")

	stdout, _, err := executeCommand(t, dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Images", "photo.jpg")); err != nil {
		t.Fatalf("photo.jpg not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Documents", "notes.txt")); err != nil {
		t.Fatalf("notes.txt not moved: %v", err)
	}
	for _, fragment := range []string{"Target: " + dir, "photo.jpg", "notes.txt", "Done. 2 moved, 0 skipped, 0 failed."} {
		if !strings.Contains(stdout, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, stdout)
		}
	}
}

func TestDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "movie.mp4"), "mp4 bytes")

	before := testsupport.Snapshot(t, dir)
	stdout, _, err := executeCommand(t, "--dry-run", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	after := testsupport.Snapshot(t, dir)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("dry run changed the directory:\nbefore %v\nafter  %v", before, after)
	}
	for _, fragment := range []string{"DRY RUN", "movie.mp4", "planned"} {
		if !strings.Contains(stdout, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, stdout)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "song.mp3"), "mp3 bytes")

	stdout, _, err := executeCommand(t, "--json", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var view reportView
	if err := json.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("invalid JSON output %q: %v", stdout, err)
	}
	if view.Target != dir || view.Summary.Moved != 1 || len(view.Entries) != 1 {
		t.Fatalf("unexpected report view: %+v", view)
	}
	if view.Entries[0].Category != "Audio" || view.Entries[0].Outcome != "moved" {
		t.Fatalf("unexpected entry: %+v", view.Entries[0])
	}
	if view.RunID == "" {
		t.Fatal("missing run_id")
	}
}

func TestMissingTargetFailsWithDistinctCode(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, _, err := executeCommand(t, missing)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if code := services.ExitCode(err); code != 2 {
		t.Fatalf("ExitCode = %d, want 2", code)
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, "-V")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, version) {
		t.Fatalf("version output %q missing %q", stdout, version)
	}
}

func TestHelpFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, "-h")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, fragment := range []string{"tidy [directory]", "--dry-run"} {
		if !strings.Contains(stdout, fragment) {
			t.Errorf("help output missing %q:\n%s", fragment, stdout)
		}
	}
}
