package pkgcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	SourceDir string        `json:"source_dir"`
	Summary   JSONSummary   `json:"summary"`
	Packages  []JSONPackage `json:"packages"`
	Warnings  []Warning     `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	PackagesKnown int `json:"packages_known"`
	PackagesFound int `json:"packages_found"`
	FilesScanned  int `json:"files_scanned"`
	Classes       int `json:"classes"`
}

// JSONPackage describes one discovered package
type JSONPackage struct {
	Name        string    `json:"name"`
	Color       JSONColor `json:"color"`
	Directory   string    `json:"directory"`
	HeaderFiles int       `json:"header_files"`
	Classes     []string  `json:"classes"`
}

// JSONColor is the package color in both notations
type JSONColor struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// WriteJSON writes the discovery report as JSON
func WriteJSON(w io.Writer, result *ScanResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts ScanResult to JSONOutput
func buildJSONOutput(result *ScanResult) JSONOutput {
	packages := make([]JSONPackage, len(result.Packages))
	for i, pkg := range result.Packages {
		c := pkg.Entry.Color
		packages[i] = JSONPackage{
			Name:        pkg.Name(),
			Color:       JSONColor{R: c.R, G: c.G, B: c.B, Hex: c.Hex()},
			Directory:   pkg.Dir,
			HeaderFiles: len(pkg.HeaderFiles),
			Classes:     append([]string{}, pkg.Classes...),
		}
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []Warning{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		SourceDir: result.SourceDir,
		Summary: JSONSummary{
			PackagesKnown: result.PackagesKnown,
			PackagesFound: len(result.Packages),
			FilesScanned:  result.FilesScanned,
			Classes:       result.ClassCount(),
		},
		Packages: packages,
		Warnings: warnings,
	}
}
