package pkgcss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralizeCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 classes"},
		{1, "1 class"},
		{2, "2 classes"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, pluralizeCount(tt.count, "class", "classes"))
		})
	}
}

func TestSwatchWithoutColors(t *testing.T) {
	assert.Empty(t, Swatch(RGB{R: 1, G: 2, B: 3}, false))
	assert.Equal(t, "fbc", RenderStyle(StyleCyan, "fbc", false))
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	assert.True(t, ShouldUseColors(true), "explicit flag wins")
	assert.False(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}

func TestReporterPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintWarnings(nil)
	assert.Empty(t, buf.String())

	r.PrintWarnings([]Warning{{Kind: WarningDuplicateClass, Package: "fbc", Text: `class "FbcAnd" declared 2 times`}})
	assert.Contains(t, buf.String(), `• fbc: class "FbcAnd" declared 2 times (duplicate-class)`)
}

func TestReporterPrintSummary(t *testing.T) {
	result := &ScanResult{
		PackagesKnown: 11,
		Packages:      []DiscoveredPackage{{Classes: []string{"FbcAnd", "FbcAnd"}}, {}},
		FilesScanned:  1,
		Warnings: []Warning{
			{Kind: WarningEmptyPackage, Package: "qual"},
			{Kind: WarningDuplicateClass, Package: "fbc"},
			{Kind: WarningEmptyPackage, Package: "multi"},
		},
	}

	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintSummary(result)

	assert.Equal(t,
		"\n2 of 11 known packages found, 2 classes in 1 file\n"+
			"3 warnings: duplicate-class 1, empty-package 2\n",
		buf.String())

	buf.Reset()
	result.Warnings = nil
	r.PrintSummary(result)
	assert.NotContains(t, buf.String(), "warning")
}
