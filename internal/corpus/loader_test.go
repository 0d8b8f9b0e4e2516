package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperjump/shitsumon/internal/extract"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "Dogs bark at the moon.")
	writeFile(t, dir, "a.txt", "Cats sleep a lot.")

	loader := NewLoader(extract.NewExtractor(), []string{".txt"})
	docs, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	// Filename order regardless of write order.
	if docs[0].ID != "a.txt" || docs[1].ID != "b.txt" {
		t.Errorf("order = [%s %s], want [a.txt b.txt]", docs[0].ID, docs[1].ID)
	}
	if docs[0].Text != "Cats sleep a lot." {
		t.Errorf("a.txt content = %q", docs[0].Text)
	}
}

func TestLoad_missingDir(t *testing.T) {
	loader := NewLoader(extract.NewExtractor(), nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoad_pathIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "text")
	loader := NewLoader(extract.NewExtractor(), nil)
	_, err := loader.Load(filepath.Join(dir, "a.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoad_filtersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "kept")
	writeFile(t, dir, "skip.log", "skipped")
	writeFile(t, dir, "noext", "skipped")

	loader := NewLoader(extract.NewExtractor(), []string{".txt"})
	docs, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "keep.txt" {
		t.Fatalf("got %v, want [keep.txt]", docs)
	}
}

func TestLoad_extensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "upper.TXT", "upper")

	loader := NewLoader(extract.NewExtractor(), []string{".txt"})
	docs, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "upper.TXT" {
		t.Errorf("upper.TXT missing: %v", docs)
	}
}

func TestLoad_skipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0700); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "top.txt", "top level")

	loader := NewLoader(extract.NewExtractor(), []string{".txt"})
	docs, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("got %d docs, want 1", len(docs))
	}
}

func TestLoad_emptyDir(t *testing.T) {
	loader := NewLoader(extract.NewExtractor(), nil)
	docs, err := loader.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs, want 0", len(docs))
	}
}
