package pkgcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStylesheet(t *testing.T) {
	tests := []struct {
		name      string
		css       string
		wantRules int
		wantDecls int
		wantErr   bool
	}{
		{
			name:      "single rule",
			css:       ".pkg-color-fbc { border: 1px solid rgb(185, 255, 210); }",
			wantRules: 1,
			wantDecls: 1,
		},
		{
			name: "selector group",
			css: `font a[href="x/A.html"]:before,
font a[href="x/B.html"]:before
{
    content: "\25cf";
    margin-right: 0.25em;
}`,
			wantRules: 1,
			wantDecls: 2,
		},
		{
			name:      "comments only",
			css:       "/* nothing to see */\n",
			wantRules: 0,
		},
		{
			name: "trailing comma in selector group",
			css: `font a[href="x/A.html"]:before,
{
    color: red;
}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ValidateStylesheet([]byte(tt.css))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStylesheet))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRules, stats.Rules)
			assert.Equal(t, tt.wantDecls, stats.Declarations)
		})
	}
}

func TestValidateRenderedPackage(t *testing.T) {
	pkg := DiscoveredPackage{
		Entry:   fbcEntry(t),
		Classes: []string{"FbcAnd", "FbcOr", "FbcAnd"},
	}

	stats, err := ValidateStylesheet([]byte(RenderPackage(pkg, libsbmlLinks)))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rules)
	assert.Equal(t, 3+14, stats.Declarations)
}
