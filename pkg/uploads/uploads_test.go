package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	url, err := saver.Save("poster.png", strings.NewReader("png bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) {
		t.Errorf("url = %q, want %q prefix", url, URLPrefix)
	}
	if !strings.HasSuffix(url, "_poster.png") {
		t.Errorf("url = %q, want stored name ending in _poster.png", url)
	}

	stored := strings.TrimPrefix(url, URLPrefix)
	data, err := os.ReadFile(filepath.Join(saver.Dir(), stored))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("stored contents = %q", data)
	}
}

func TestSave_UniqueNames(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	a, err := saver.Save("logo.jpg", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := saver.Save("logo.jpg", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Errorf("two uploads of the same filename stored at the same path %q", a)
	}
}

func TestSave_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	for _, name := range []string{"../../etc/passwd", "a/b/c.png", `..\..\boot.ini`} {
		url, err := saver.Save(name, strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Save(%q): %v", name, err)
		}
		stored := strings.TrimPrefix(url, URLPrefix)
		if strings.ContainsAny(stored, `/\`) {
			t.Errorf("Save(%q) stored name %q keeps path separators", name, stored)
		}
		if _, err := os.Stat(filepath.Join(dir, stored)); err != nil {
			t.Errorf("Save(%q) did not land in the upload dir: %v", name, err)
		}
	}
}

func TestSave_RejectsEmptyName(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	if _, err := saver.Save("", strings.NewReader("x")); err == nil {
		t.Error("Save with empty filename succeeded, want error")
	}
}

func TestNewSaver_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewSaver(dir); err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("upload directory not created: %v", err)
	}
}
