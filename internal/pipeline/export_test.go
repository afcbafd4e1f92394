package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLines(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "contagem.txt")
	lines := []string{"123|789|A", "456||B"}
	if err := WriteLines(lines, out, ""); err != nil {
		t.Fatal(err)
	}
	blob, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != "123|789|A\n456||B\n" {
		t.Fatalf("content=%q", blob)
	}
}

func TestWriteLinesCRLF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "contagem.txt")
	if err := WriteLines([]string{"a", "b"}, out, "\r\n"); err != nil {
		t.Fatal(err)
	}
	blob, _ := os.ReadFile(out)
	if string(blob) != "a\r\nb\r\n" {
		t.Fatalf("content=%q", blob)
	}
}
