package pkgcss

import (
	"fmt"
	"sort"
	"strings"
)

// AnalyzePackages reports empty packages, repeated class names and names
// claimed by more than one package. When dedupe is set the returned
// packages keep only the first occurrence of each class name.
func AnalyzePackages(packages []DiscoveredPackage, dedupe bool) ([]DiscoveredPackage, []Warning) {
	var warnings []Warning
	owners := make(map[string][]string) // class -> packages, table order
	result := make([]DiscoveredPackage, 0, len(packages))

	for _, pkg := range packages {
		if len(pkg.Classes) == 0 {
			warnings = append(warnings, Warning{
				Kind:    WarningEmptyPackage,
				Package: pkg.Name(),
				Text:    fmt.Sprintf("no classes found in %d header files; package omitted", len(pkg.HeaderFiles)),
			})
			result = append(result, pkg)
			continue
		}

		counts := make(map[string]int, len(pkg.Classes))
		var order []string
		for _, class := range pkg.Classes {
			if counts[class] == 0 {
				order = append(order, class)
			}
			counts[class]++
		}

		for _, class := range order {
			if class == "" {
				warnings = append(warnings, Warning{
					Kind:    WarningEmptyClassName,
					Package: pkg.Name(),
					Text:    "marker found with no class name after it",
				})
			} else if counts[class] > 1 {
				warnings = append(warnings, Warning{
					Kind:    WarningDuplicateClass,
					Package: pkg.Name(),
					Text:    fmt.Sprintf("class %q declared %d times", class, counts[class]),
				})
			}
			if class != "" {
				owners[class] = append(owners[class], pkg.Name())
			}
		}

		if dedupe {
			pkg.Classes = order
		}
		result = append(result, pkg)
	}

	warnings = append(warnings, sharedClassWarnings(owners)...)
	return result, warnings
}

// sharedClassWarnings reports class names linked from several packages,
// which would receive more than one badge
func sharedClassWarnings(owners map[string][]string) []Warning {
	classes := make([]string, 0, len(owners))
	for class, pkgs := range owners {
		if len(pkgs) > 1 {
			classes = append(classes, class)
		}
	}
	sort.Strings(classes)

	warnings := make([]Warning, 0, len(classes))
	for _, class := range classes {
		pkgs := owners[class]
		warnings = append(warnings, Warning{
			Kind:    WarningSharedClass,
			Package: pkgs[0],
			Text:    fmt.Sprintf("class %q is declared by packages %s", class, strings.Join(pkgs, ", ")),
		})
	}
	return warnings
}

// CountByKind groups warnings by kind
func CountByKind(warnings []Warning) map[string]int {
	counts := make(map[string]int)
	for _, w := range warnings {
		counts[w.Kind]++
	}
	return counts
}
