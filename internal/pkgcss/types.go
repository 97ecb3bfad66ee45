package pkgcss

// RGB is an 8-bit-per-channel color
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// PackageColor associates a package identifier with its badge color
type PackageColor struct {
	Name  string // "fbc"
	Color RGB    // {185, 255, 210}
}

// ColorSpec is the raw, unvalidated form of a color table entry as it
// appears in configuration. Exactly one of RGB or Hex must be set.
type ColorSpec struct {
	Name string `koanf:"name"`
	RGB  []int  `koanf:"rgb"` // [185, 255, 210]
	Hex  string `koanf:"hex"` // "#b9ffd2"
}

// DiscoveredPackage is a known package found under the scanned root
type DiscoveredPackage struct {
	Entry       PackageColor
	Dir         string   // "src/sbml/packages/fbc"
	HeaderFiles []string // Sorted header paths that were scanned
	Classes     []string // Class names in encounter order, duplicates kept
}

// Name returns the package identifier
func (p DiscoveredPackage) Name() string {
	return p.Entry.Name
}

// LinkTemplate controls the href each selector targets:
// Prefix + class name + Suffix.
type LinkTemplate struct {
	Prefix string // "org/sbml/libsbml/"
	Suffix string // ".html"
}

// HeaderOptions controls which files count as headers during discovery
type HeaderOptions struct {
	Suffix           string   // ".h"
	ExcludeSuffixes  []string // ["fwd.h", "ExtensionTypes.h"]
	RespectGitignore bool     // Skip files matched by <root>/.gitignore
	IgnoreRoot       string   // Directory whose .gitignore applies (the scan root)
}

// Config holds generator configuration
type Config struct {
	SourceDir string      // "src/sbml/packages"
	Colors    *ColorTable // Known packages, in emission order
	Marker    string      // "@class"
	Headers   HeaderOptions
	Links     LinkTemplate
	Dedupe    bool // Drop repeated class names within a package
	Validate  bool // Parse the rendered stylesheet before writing it
	Strict    bool // Treat any warning as fatal
}

// Warning kinds
const (
	WarningEmptyPackage   = "empty-package"
	WarningDuplicateClass = "duplicate-class"
	WarningSharedClass    = "shared-class"
	WarningEmptyClassName = "empty-class-name"

	WarningInvalidStylesheet = "invalid-stylesheet"
)

// Warning is a non-fatal finding from discovery or analysis
type Warning struct {
	Kind    string `json:"kind"`    // "duplicate-class"
	Package string `json:"package"` // "fbc"
	Text    string `json:"text"`    // "class \"FbcAnd\" declared 2 times"
}

// ScanResult is everything discovery found under a source root
type ScanResult struct {
	SourceDir     string
	PackagesKnown int
	Packages      []DiscoveredPackage
	FilesScanned  int
	Warnings      []Warning
}

// ClassCount returns the total number of class names across all packages
func (r *ScanResult) ClassCount() int {
	n := 0
	for _, pkg := range r.Packages {
		n += len(pkg.Classes)
	}
	return n
}

// GenerateResult contains generation stats
type GenerateResult struct {
	PackagesKnown   int
	PackagesFound   int
	PackagesEmitted int // Found packages that had at least one class
	FilesScanned    int
	ClassesEmitted  int
	Rules           int // Rulesets in the stylesheet, 0 when validation is off
	Warnings        []Warning
}

// OutputFormat represents the discovery report format
type OutputFormat string

const (
	// OutputText prints packages and classes for humans
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
