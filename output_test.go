package pkgcss

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	core "github.com/yacobolo/pkgcss/internal/pkgcss"
)

func sampleScanResult(t *testing.T) *ScanResult {
	t.Helper()
	table := core.DefaultColorTable()
	fbc, _ := table.Lookup("fbc")
	qual, _ := table.Lookup("qual")

	return &ScanResult{
		SourceDir:     "src/sbml/packages",
		PackagesKnown: table.Len(),
		FilesScanned:  3,
		Packages: []DiscoveredPackage{
			{
				Entry:       fbc,
				Dir:         "src/sbml/packages/fbc",
				HeaderFiles: []string{"a.h", "b.h"},
				Classes:     []string{"FbcModelPlugin", "Objective"},
			},
			{
				Entry:       qual,
				Dir:         "src/sbml/packages/qual",
				HeaderFiles: []string{"c.h"},
			},
		},
		Warnings: []Warning{
			{Kind: core.WarningEmptyPackage, Package: "qual", Text: "no classes found in 1 header files; package omitted"},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		expected   OutputFormat
	}{
		{"explicit json", "json", OutputJSON},
		{"explicit text", "text", OutputText},
		{"empty defaults to text", "", OutputText},
		{"unknown falls back to text", "yaml", OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleScanResult(t)))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, "src/sbml/packages", output.SourceDir)

	assert.Equal(t, 11, output.Summary.PackagesKnown)
	assert.Equal(t, 2, output.Summary.PackagesFound)
	assert.Equal(t, 3, output.Summary.FilesScanned)
	assert.Equal(t, 2, output.Summary.Classes)

	require.Len(t, output.Packages, 2)
	fbc := output.Packages[0]
	assert.Equal(t, "fbc", fbc.Name)
	assert.Equal(t, JSONColor{R: 185, G: 255, B: 210, Hex: "#b9ffd2"}, fbc.Color)
	assert.Equal(t, 2, fbc.HeaderFiles)
	assert.Equal(t, []string{"FbcModelPlugin", "Objective"}, fbc.Classes)

	// Empty class lists are encoded as [] rather than null
	assert.NotNil(t, output.Packages[1].Classes)
	assert.Contains(t, buf.String(), `"classes": []`)

	require.Len(t, output.Warnings, 1)
	assert.Equal(t, "empty-package", output.Warnings[0].Kind)
}

func TestWriteOutputText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleScanResult(t), OutputText, false))

	out := buf.String()
	assert.Contains(t, out, "fbc #b9ffd2 (2 classes, 2 headers)\n")
	assert.Contains(t, out, "\tFbcModelPlugin\n\tObjective\n")
	assert.Contains(t, out, "qual #8cdcfa (0 classes, 1 header)\n")
	assert.Contains(t, out, "Warnings")
	assert.Contains(t, out, "2 of 11 known packages found, 2 classes in 3 files")
}
