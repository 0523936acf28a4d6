package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListFolder(t *testing.T) {
	root := t.TempDir()

	writeFile := func(rel string, size int) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	writeFile("report.pdf", 100)
	writeFile("fotos/ferias/praia.jpg", 2048)
	writeFile("fotos/vazia.png", 0)

	entries, err := ListFolder(root)
	if err != nil {
		t.Fatalf("list folder failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	byPath := map[string]int64{}
	for _, e := range entries {
		byPath[e.Path] = e.Size
	}

	if size, ok := byPath["report.pdf"]; !ok || size != 100 {
		t.Errorf("report.pdf: %d, %v", size, ok)
	}
	if size, ok := byPath["fotos/ferias/praia.jpg"]; !ok || size != 2048 {
		t.Errorf("praia.jpg: %d, %v", size, ok)
	}
	if size, ok := byPath["fotos/vazia.png"]; !ok || size != 0 {
		t.Errorf("vazia.png: %d, %v", size, ok)
	}

	for _, e := range entries {
		if filepath.Base(filepath.FromSlash(e.Path)) != e.Name {
			t.Errorf("entry name %q does not match path %q", e.Name, e.Path)
		}
	}
}

func TestListFolder_NotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := ListFolder(file); err == nil {
		t.Error("expected error for non-directory root")
	}
	if _, err := ListFolder(filepath.Join(root, "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}
