package pkgcss

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
)

// Reporter prints a human-readable discovery report
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter; forceColor enables colors even when
// stdout is not a terminal
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColor),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PrintPackages lists each discovered package with its classes
func (r *Reporter) PrintPackages(result *ScanResult) {
	for _, pkg := range result.Packages {
		counts := fmt.Sprintf("(%s, %s)",
			pluralizeCount(len(pkg.Classes), "class", "classes"),
			pluralizeCount(len(pkg.HeaderFiles), "header", "headers"))

		fmt.Fprintf(r.w, "%s%s %s %s\n",
			Swatch(pkg.Entry.Color, r.useColors),
			RenderStyle(StyleCyan, pkg.Name(), r.useColors),
			pkg.Entry.Color.Hex(),
			RenderStyle(StyleGray, counts, r.useColors))

		for _, class := range pkg.Classes {
			fmt.Fprintf(r.w, "\t%s\n", class)
		}
	}
}

// PrintWarnings outputs analysis warnings
func (r *Reporter) PrintWarnings(warnings []Warning) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s: %s (%s)\n", w.Package, w.Text, w.Kind)
	}
}

// PrintSummary outputs the package and class totals
func (r *Reporter) PrintSummary(result *ScanResult) {
	fmt.Fprintln(r.w, "")
	summary := fmt.Sprintf("%d of %d known packages found, %s in %s",
		len(result.Packages), result.PackagesKnown,
		pluralizeCount(result.ClassCount(), "class", "classes"),
		pluralizeCount(result.FilesScanned, "file", "files"))
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, summary, r.useColors))

	if len(result.Warnings) == 0 {
		return
	}
	counts := CountByKind(result.Warnings)
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = fmt.Sprintf("%s %d", kind, counts[kind])
	}
	line := fmt.Sprintf("%s: %s", pluralizeCount(len(result.Warnings), "warning", "warnings"), strings.Join(parts, ", "))
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, line, r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
