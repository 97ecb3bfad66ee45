// Package pkgcss generates the libSBML package stylesheet.
//
// pkgcss scans a package source tree for documented classes and emits CSS
// that decorates documentation links to those classes with a colored bullet
// and a badge naming the package they belong to.
//
// # Generation
//
// Generate the stylesheet for a source tree:
//
//	config := pkgcss.DefaultConfig("src/sbml/packages")
//	result, err := pkgcss.Generate(os.Stdout, config)
//
// # Discovery
//
// Inspect what would be styled without rendering anything:
//
//	scan, err := pkgcss.Scan(config)
//	for _, pkg := range scan.Packages {
//		fmt.Println(pkg.Name(), len(pkg.Classes))
//	}
//
// # CLI Tool
//
// pkgcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/pkgcss/cmd/pkgcss@latest
//
// and run it as part of the documentation build:
//
//	pkgcss src/sbml/packages > libsbml-package-stylesheet.css
package pkgcss

import core "github.com/yacobolo/pkgcss/internal/pkgcss"

// Types shared with the internal implementation
type (
	Config            = core.Config
	ColorTable        = core.ColorTable
	ColorSpec         = core.ColorSpec
	PackageColor      = core.PackageColor
	RGB               = core.RGB
	DiscoveredPackage = core.DiscoveredPackage
	HeaderOptions     = core.HeaderOptions
	LinkTemplate      = core.LinkTemplate
	ScanResult        = core.ScanResult
	GenerateResult    = core.GenerateResult
	Warning           = core.Warning
	OutputFormat      = core.OutputFormat
)

// Defaults match the libSBML source layout and Javadoc output
const (
	DefaultMarker       = "@class"
	DefaultHeaderSuffix = ".h"
	DefaultLinkPrefix   = "org/sbml/libsbml/"
	DefaultLinkSuffix   = ".html"
)

// DefaultExcludeSuffixes drops forward declarations and generated type headers
func DefaultExcludeSuffixes() []string {
	return []string{"fwd.h", "ExtensionTypes.h"}
}

// DefaultConfig returns the configuration the documentation build uses
func DefaultConfig(sourceDir string) Config {
	return Config{
		SourceDir: sourceDir,
		Colors:    core.DefaultColorTable(),
		Marker:    DefaultMarker,
		Headers: HeaderOptions{
			Suffix:          DefaultHeaderSuffix,
			ExcludeSuffixes: DefaultExcludeSuffixes(),
		},
		Links: LinkTemplate{
			Prefix: DefaultLinkPrefix,
			Suffix: DefaultLinkSuffix,
		},
		Validate: true,
	}
}

// DefaultColorSpecs returns the built-in palette in configuration form
func DefaultColorSpecs() []ColorSpec {
	return core.DefaultColorSpecs()
}

// NewColorTable validates specs and builds a color table in the given order
func NewColorTable(specs []ColorSpec) (*ColorTable, error) {
	return core.NewColorTable(specs)
}
