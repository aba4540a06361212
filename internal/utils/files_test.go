package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSafeWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "view.json")
	if err := SafeWriteFile(path, []byte("{}\n")); err != nil {
		t.Fatalf("SafeWriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "{}\n" {
		t.Fatalf("content = %q", b)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"bins": 30})
	if err != nil {
		t.Fatalf("PrettyJSON: %v", err)
	}
	if string(b) != "{\n  \"bins\": 30\n}\n" {
		t.Fatalf("unexpected json %q", b)
	}
	if _, err := PrettyJSON(make(chan int)); err == nil {
		t.Fatalf("expected marshal error for channel")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ExpandHome("~/data/arabica.csv")
	if err != nil {
		t.Fatalf("ExpandHome: %v", err)
	}
	if got != filepath.Join(home, "data", "arabica.csv") {
		t.Fatalf("ExpandHome = %q", got)
	}
	got, _ = ExpandHome("rel/arabica.csv")
	if got != "rel/arabica.csv" || strings.HasPrefix(got, home) {
		t.Fatalf("relative path rewritten: %q", got)
	}
}
