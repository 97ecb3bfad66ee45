package pkgcss

import (
	"fmt"
	"strings"
)

// Every block ends with a blank line so the stream matches what the
// documentation build has always consumed.

const headerTemplate = `/**
 * WARNING -- THIS FILE IS AUTO-GENERATED -- DO NOT EDIT THIS FILE
 *
 * @file    libsbml-package-stylesheet.css
 * @brief   Stylesheet used by libSBML for L3 package plug-in docs.
 * @author  libSBML Team <libsbml-team@caltech.edu>
 *
 * This file is generated by pkgcss from the libSBML package source
 * directory.  DO NOT EDIT THIS FILE DIRECTLY BECAUSE YOUR CHANGES WILL BE
 * LOST WHEN THE FILE IS REGENERATED.
 *
 * This file is part of libSBML.  Please visit http://sbml.org for more
 * information about SBML, and the latest version of libSBML.
 */

`

const separatorTemplate = `
/* Styling for package '%s' used in libSBML Javadoc output */

`

const colorClassTemplate = ".pkg-color-%[1]s \n" + `{
    border: 1px solid rgb(%[2]d, %[3]d, %[4]d);
    background-color: rgba(%[2]d, %[3]d, %[4]d, 0.35);
}

`

const beforeTemplate = `{
    content: "\25cf";
    color: rgb(%[1]d, %[2]d, %[3]d) !important;
    margin-right: 0.25em;
}

`

const afterTemplate = `{
    content: "%[1]s";
    background-color: rgba(%[2]d, %[3]d, %[4]d, 0.35);
    border: 1px solid rgb(%[2]d, %[3]d, %[4]d);
    border-radius: 5px;
    -moz-border-radius: 5px;
    -webkit-border-radius: 5px;
    margin-left: 1em;
    padding: 0px 3px;
    min-width: 40px;
    width: 40px;
    text-align: center;
    font-size: 80%%;
    font-style: italic;
    color: #333 !important;
}

`

// Pseudo-elements the badges attach to
const (
	PseudoBefore = "before"
	PseudoAfter  = "after"
)

// RenderHeader returns the auto-generated warning banner
func RenderHeader() string {
	return headerTemplate
}

// RenderColorClass returns the manual .pkg-color-<name> styling class
func RenderColorClass(entry PackageColor) string {
	c := entry.Color
	return fmt.Sprintf(colorClassTemplate, entry.Name, c.R, c.G, c.B)
}

// RenderSeparator returns the comment introducing a package's rules
func RenderSeparator(name string) string {
	return fmt.Sprintf(separatorTemplate, name)
}

// RenderSelectors returns one selector line per class, comma-joined.
// Only the line in the last position omits the comma, so repeated names
// never break the group.
func RenderSelectors(classes []string, pseudo string, links LinkTemplate) string {
	var b strings.Builder
	for i, class := range classes {
		comma := ","
		if i == len(classes)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "font a[href=\"%s%s%s\"]:%s%s\n", links.Prefix, class, links.Suffix, pseudo, comma)
	}
	return b.String()
}

// RenderBefore returns the colored bullet declaration block
func RenderBefore(c RGB) string {
	return fmt.Sprintf(beforeTemplate, c.R, c.G, c.B)
}

// RenderAfter returns the badge declaration block labeled with the package name
func RenderAfter(name string, c RGB) string {
	return fmt.Sprintf(afterTemplate, name, c.R, c.G, c.B)
}

// RenderPackage returns the separator and both selector/rule pairs for pkg.
// A package without classes renders nothing.
func RenderPackage(pkg DiscoveredPackage, links LinkTemplate) string {
	if len(pkg.Classes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderSeparator(pkg.Name()))
	b.WriteString(RenderSelectors(pkg.Classes, PseudoBefore, links))
	b.WriteString(RenderBefore(pkg.Entry.Color))
	b.WriteString(RenderSelectors(pkg.Classes, PseudoAfter, links))
	b.WriteString(RenderAfter(pkg.Name(), pkg.Entry.Color))
	return b.String()
}

// RenderStylesheet assembles the complete stylesheet. Color classes are
// emitted for every table entry, found or not.
func RenderStylesheet(table *ColorTable, packages []DiscoveredPackage, links LinkTemplate) string {
	var b strings.Builder
	b.WriteString(RenderHeader())

	for _, entry := range table.Entries() {
		b.WriteString(RenderColorClass(entry))
	}

	for _, pkg := range packages {
		b.WriteString(RenderPackage(pkg, links))
	}

	return b.String()
}
