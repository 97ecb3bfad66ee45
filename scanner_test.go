package pkgcss

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path (and parents) under root with the given content
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	return full
}

func TestMatchMarker(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantName  string
		wantFound bool
	}{
		{
			name:      "doc comment line",
			line:      " * @class FbcModelPlugin",
			wantName:  "FbcModelPlugin",
			wantFound: true,
		},
		{
			name:      "trailing whitespace trimmed",
			line:      "/** @class   ListOfObjectives  \t",
			wantName:  "ListOfObjectives",
			wantFound: true,
		},
		{
			name:      "no marker",
			line:      " * @brief Implementation of the fbc package plugin",
			wantFound: false,
		},
		{
			name:      "marker with nothing after it",
			line:      " * @class",
			wantName:  "",
			wantFound: true,
		},
		{
			name:      "name is taken literally to end of line",
			line:      "@class Foo bar baz",
			wantName:  "Foo bar baz",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := MatchMarker(tt.line, DefaultMarker)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantName, got)
		})
	}
}

func TestExtractClasses(t *testing.T) {
	dir := t.TempDir()

	t.Run("matching lines in order", func(t *testing.T) {
		path := writeFile(t, dir, "FbcAnd.h", strings.Join([]string{
			"/**",
			" * @class FbcAnd",
			" * @sbmlbrief{fbc} An &ldquo;and&rdquo; relationship.",
			" */",
			"",
			"/**",
			" * @class ListOfFbcAssociations",
			" */",
			"class FbcAnd : public FbcAssociation",
			" * @class FbcAnd",
		}, "\n"))

		classes, err := ExtractClasses(path, DefaultMarker)
		require.NoError(t, err)
		assert.Equal(t, []string{"FbcAnd", "ListOfFbcAssociations", "FbcAnd"}, classes)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		path := writeFile(t, dir, "FbcFwd.h", "#ifndef FbcFwd_H__\n#define FbcFwd_H__\n#endif\n")

		classes, err := ExtractClasses(path, DefaultMarker)
		require.NoError(t, err)
		assert.NotNil(t, classes)
		assert.Empty(t, classes)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := ExtractClasses(filepath.Join(dir, "missing.h"), DefaultMarker)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.h")
	})

	t.Run("long lines are scanned", func(t *testing.T) {
		long := strings.Repeat("x", 200*1024)
		path := writeFile(t, dir, "Long.h", long+"\n * @class Long\n")

		classes, err := ExtractClasses(path, DefaultMarker)
		require.NoError(t, err)
		assert.Equal(t, []string{"Long"}, classes)
	})
}

func TestExtractClassesFromFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.h", "@class A1\n@class A2\n")
	b := writeFile(t, dir, "b.h", "nothing here\n")
	c := writeFile(t, dir, "c.h", "@class C1\n")

	classes, err := ExtractClassesFromFiles([]string{a, b, c}, DefaultMarker)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "C1"}, classes)

	_, err = ExtractClassesFromFiles([]string{a, filepath.Join(dir, "gone.h")}, DefaultMarker)
	require.Error(t, err)
}

func TestIsHeader(t *testing.T) {
	opts := HeaderOptions{Suffix: DefaultHeaderSuffix, ExcludeSuffixes: DefaultExcludeSuffixes()}

	tests := []struct {
		path     string
		expected bool
	}{
		{"fbc/sbml/Foo.h", true},
		{"fbc/sbml/Foo_fwd.h", false},
		{"fbc/common/fbcfwd.h", false},
		{"fbc/extension/FooExtensionTypes.h", false},
		{"fbc/sbml/Foo.cpp", false},
		{"fbc/sbml/Foo.hpp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, isHeader(tt.path, opts), "isHeader(%q)", tt.path)
		})
	}
}

func TestCollectHeaderFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sbml/Foo.h", "")
	writeFile(t, dir, "sbml/Foo_fwd.h", "")
	writeFile(t, dir, "extension/FooExtensionTypes.h", "")
	writeFile(t, dir, "extension/FooExtension.h", "")
	writeFile(t, dir, "sbml/Foo.cpp", "")
	writeFile(t, dir, "Top.h", "")
	// A directory with a header-like name must not be returned
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "weird.h"), 0755))

	opts := HeaderOptions{Suffix: DefaultHeaderSuffix, ExcludeSuffixes: DefaultExcludeSuffixes()}
	files, err := CollectHeaderFiles(dir, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "Top.h"),
		filepath.Join(dir, "extension", "FooExtension.h"),
		filepath.Join(dir, "sbml", "Foo.h"),
	}, files)
}

func TestCollectHeaderFilesRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "build\n")
	writeFile(t, root, "fbc/sbml/Foo.h", "")
	writeFile(t, root, "fbc/build/Generated.h", "")

	opts := HeaderOptions{
		Suffix:          DefaultHeaderSuffix,
		ExcludeSuffixes: DefaultExcludeSuffixes(),
		IgnoreRoot:      root,
	}

	files, err := CollectHeaderFiles(filepath.Join(root, "fbc"), opts)
	require.NoError(t, err)
	assert.Len(t, files, 2, "gitignore is opt-in")

	opts.RespectGitignore = true
	files, err = CollectHeaderFiles(filepath.Join(root, "fbc"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "fbc", "sbml", "Foo.h")}, files)
}
