package bundle

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// verbatimFunc marks the function whose body is copied without cleaning.
// Like banner blocks, the function ends at the next blank line.
const verbatimFunc = "function Show-Dragon"

// importRe matches dot-sourced module imports in the main script, e.g.
// ". C:\proj\Modules\Backup.ps1".
var importRe = regexp.MustCompile(`^\.\s+(.*\\Modules\\.*\.ps1)$`)

// readLines reads a UTF-8 text file and splits it into lines without
// terminators. CRLF endings are normalized; a trailing newline does not
// produce an empty final line.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// writeLines joins lines with single newlines and writes them UTF-8
// encoded, creating the parent directory if needed.
func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

// moduleFileName returns the final segment of a module import path. Import
// lines carry Windows-style paths, so both separators are honored.
func moduleFileName(p string) string {
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}

// Combine performs a single pass over the main script: dot-sourced module
// files are spliced in raw from modulesDir, the verbatim function block is
// copied with only trailing whitespace trimmed, and every other line goes
// through the comment cleaner. The combined script is written to
// outputFile.
//
// A module import whose file does not exist in modulesDir is dropped
// entirely: neither the import line nor any placeholder reaches the
// output. Spliced modules are not scanned for nested imports.
func Combine(sourceFile, modulesDir, outputFile string) error {
	lines, err := readLines(sourceFile)
	if err != nil {
		return err
	}

	var combined []string
	var cleaner Cleaner
	verbatim := false
	for _, line := range lines {
		if strings.Contains(line, verbatimFunc) {
			verbatim = true
		}
		if verbatim {
			combined = append(combined, trimTrailing(line))
			if strings.TrimSpace(line) == "" {
				verbatim = false
			}
			continue
		}

		if m := importRe.FindStringSubmatch(line); m != nil {
			moduleFile := filepath.Join(modulesDir, moduleFileName(m[1]))
			moduleLines, err := readLines(moduleFile)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return err
			}
			combined = append(combined, moduleLines...)
			continue
		}

		if out, ok := cleaner.Clean(line); ok {
			combined = append(combined, out)
		}
	}

	return writeLines(outputFile, combined)
}
