package pkgcss

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// maxLineLength bounds a single header line; doc comments never get close
const maxLineLength = 1024 * 1024

// MatchMarker looks for marker in line. When found, the class name is the
// remainder of the line after the marker, trimmed of surrounding whitespace.
func MatchMarker(line, marker string) (string, bool) {
	_, rest, found := strings.Cut(line, marker)
	if !found {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// ExtractClasses returns every class name declared in path, in line order
func ExtractClasses(path, marker string) ([]string, error) {
	// #nosec G304 - path comes from directory discovery under the source root
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	classes := []string{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		if name, ok := MatchMarker(scanner.Text(), marker); ok {
			classes = append(classes, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return classes, nil
}

// ExtractClassesFromFiles concatenates the classes of each file in order
func ExtractClassesFromFiles(paths []string, marker string) ([]string, error) {
	classes := []string{}
	for _, path := range paths {
		found, err := ExtractClasses(path, marker)
		if err != nil {
			return nil, err
		}
		classes = append(classes, found...)
	}
	return classes, nil
}

// isHeader checks the header suffix and the exclusion suffixes
func isHeader(path string, opts HeaderOptions) bool {
	if !strings.HasSuffix(path, opts.Suffix) {
		return false
	}
	for _, excluded := range opts.ExcludeSuffixes {
		if excluded != "" && strings.HasSuffix(path, excluded) {
			return false
		}
	}
	return true
}

// loadGitIgnore compiles <root>/.gitignore.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// CollectHeaderFiles recursively finds header files under dir, sorted
// lexicographically so repeated runs produce identical output.
//
// Two-layer filtering:
// 1. Suffix check: keep *.h, drop forward declarations and generated types
// 2. Gitignore check (opt-in): drop paths ignored by the scan root's .gitignore
func CollectHeaderFiles(dir string, opts HeaderOptions) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+opts.Suffix, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob headers in %s: %w", dir, err)
	}

	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		root := opts.IgnoreRoot
		if root == "" {
			root = dir
		}
		gi = loadGitIgnore(root)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		path := filepath.Join(dir, filepath.FromSlash(match))
		if !isHeader(path, opts) {
			continue
		}
		if gi != nil && ignoredBy(gi, opts.IgnoreRoot, path) {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// ignoredBy matches path relative to the directory holding the .gitignore
func ignoredBy(gi *ignore.GitIgnore, root, path string) bool {
	rel := path
	if root != "" {
		if r, err := filepath.Rel(root, path); err == nil {
			rel = r
		}
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}
