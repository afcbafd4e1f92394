package pipeline

import (
	"bufio"
	"os"
	"path/filepath"
)

// WriteLines writes one record per line to outputPath in UTF-8, creating
// parent directories as needed. newline defaults to "\n".
func WriteLines(lines []string, outputPath, newline string) error {
	if newline == "" {
		newline = "\n"
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + newline); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
