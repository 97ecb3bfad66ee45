package pkgcss

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette construction errors
var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrDuplicatePackage   = errors.New("duplicate package")
	ErrEmptyTable         = errors.New("empty color table")
)

// Package names end up inside a CSS class name and a CSS string literal.
var packageNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// defaultColorSpecs is the libSBML Level 3 package palette
var defaultColorSpecs = []ColorSpec{
	{Name: "comp", RGB: []int{190, 200, 231}},
	{Name: "fbc", RGB: []int{185, 255, 210}},
	{Name: "layout", RGB: []int{233, 176, 149}},
	{Name: "qual", RGB: []int{140, 220, 250}},
	{Name: "multi", RGB: []int{223, 189, 30}},
	{Name: "groups", RGB: []int{250, 170, 210}},
	{Name: "arrays", RGB: []int{55, 221, 177}},
	{Name: "distrib", RGB: []int{243, 250, 134}},
	{Name: "spatial", RGB: []int{0, 150, 132}},
	{Name: "req", RGB: []int{100, 100, 100}},
	{Name: "render", RGB: []int{225, 225, 225}},
}

// ColorTable is an ordered, immutable package → color mapping.
// Iteration order is emission order.
type ColorTable struct {
	entries []PackageColor
	index   map[string]int
}

// NewRGB validates channel values and builds an RGB
func NewRGB(r, g, b int) (RGB, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: channel value %d outside 0-255", ErrInvalidColor, v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHexRGB parses "#rrggbb" (or "#rgb") into an RGB
func ParseHexRGB(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the color as "#rrggbb"
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// resolve turns a spec into a validated PackageColor
func (s ColorSpec) resolve() (PackageColor, error) {
	if !packageNamePattern.MatchString(s.Name) {
		return PackageColor{}, fmt.Errorf("%w: %q", ErrInvalidPackageName, s.Name)
	}

	hasRGB := len(s.RGB) > 0
	hasHex := s.Hex != ""

	switch {
	case hasRGB && hasHex:
		return PackageColor{}, fmt.Errorf("%w: package %q sets both rgb and hex", ErrInvalidColor, s.Name)
	case hasHex:
		c, err := ParseHexRGB(s.Hex)
		if err != nil {
			return PackageColor{}, fmt.Errorf("package %q: %w", s.Name, err)
		}
		return PackageColor{Name: s.Name, Color: c}, nil
	case len(s.RGB) == 3:
		c, err := NewRGB(s.RGB[0], s.RGB[1], s.RGB[2])
		if err != nil {
			return PackageColor{}, fmt.Errorf("package %q: %w", s.Name, err)
		}
		return PackageColor{Name: s.Name, Color: c}, nil
	default:
		return PackageColor{}, fmt.Errorf("%w: package %q needs rgb: [r, g, b] or hex", ErrInvalidColor, s.Name)
	}
}

// NewColorTable validates specs and builds a table in the given order
func NewColorTable(specs []ColorSpec) (*ColorTable, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyTable
	}

	t := &ColorTable{
		entries: make([]PackageColor, 0, len(specs)),
		index:   make(map[string]int, len(specs)),
	}

	for _, spec := range specs {
		entry, err := spec.resolve()
		if err != nil {
			return nil, err
		}
		if _, exists := t.index[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePackage, entry.Name)
		}
		t.index[entry.Name] = len(t.entries)
		t.entries = append(t.entries, entry)
	}

	return t, nil
}

// DefaultColorTable returns the built-in libSBML package palette
func DefaultColorTable() *ColorTable {
	t, err := NewColorTable(DefaultColorSpecs())
	if err != nil {
		panic(fmt.Sprintf("default color table: %v", err))
	}
	return t
}

// DefaultColorSpecs returns a copy of the built-in palette in config form
func DefaultColorSpecs() []ColorSpec {
	specs := make([]ColorSpec, len(defaultColorSpecs))
	for i, s := range defaultColorSpecs {
		specs[i] = ColorSpec{Name: s.Name, RGB: append([]int(nil), s.RGB...), Hex: s.Hex}
	}
	return specs
}

// Has reports whether name is a known package
func (t *ColorTable) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Lookup returns the entry for name
func (t *ColorTable) Lookup(name string) (PackageColor, bool) {
	i, ok := t.index[name]
	if !ok {
		return PackageColor{}, false
	}
	return t.entries[i], true
}

// Entries returns a copy of all entries in table order
func (t *ColorTable) Entries() []PackageColor {
	return append([]PackageColor(nil), t.entries...)
}

// Names returns the package identifiers in table order
func (t *ColorTable) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of known packages
func (t *ColorTable) Len() int {
	return len(t.entries)
}
