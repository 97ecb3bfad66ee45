package pkgcss

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/pkgcss/internal/logging"
	core "github.com/yacobolo/pkgcss/internal/pkgcss"
)

// DiscoverPackages returns the known packages that exist as immediate
// subdirectories of root, in color table order
func DiscoverPackages(root string, table *ColorTable) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	dirs := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs[entry.Name()] = true
			continue
		}
		// Symlinked package directories count too
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(root, entry.Name()))
			if err == nil && info.IsDir() {
				dirs[entry.Name()] = true
			}
		}
	}

	var found []string
	for _, name := range table.Names() {
		if dirs[name] {
			found = append(found, name)
		}
	}
	return found, nil
}

// Scan discovers packages under config.SourceDir and extracts their classes
func Scan(config Config) (*ScanResult, error) {
	logger := logging.GetLogger("scan")
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	names, err := DiscoverPackages(config.SourceDir, config.Colors)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("source", config.SourceDir).
		Strs("packages", names).
		Msgf("Found %d of %d known packages", len(names), config.Colors.Len())

	headers := config.Headers
	if headers.IgnoreRoot == "" {
		headers.IgnoreRoot = config.SourceDir
	}

	result := &ScanResult{
		SourceDir:     config.SourceDir,
		PackagesKnown: config.Colors.Len(),
	}

	packages := make([]DiscoveredPackage, 0, len(names))
	for _, name := range names {
		entry, _ := config.Colors.Lookup(name)
		dir := filepath.Join(config.SourceDir, name)

		files, err := CollectHeaderFiles(dir, headers)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", name, err)
		}

		classes, err := ExtractClassesFromFiles(files, config.Marker)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", name, err)
		}

		logger.Debug().
			Str("package", name).
			Int("headers", len(files)).
			Int("classes", len(classes)).
			Msg("Scanned package")

		result.FilesScanned += len(files)
		packages = append(packages, DiscoveredPackage{
			Entry:       entry,
			Dir:         dir,
			HeaderFiles: files,
			Classes:     classes,
		})
	}

	result.Packages, result.Warnings = core.AnalyzePackages(packages, config.Dedupe)
	return result, nil
}
