package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSelectorsAndExtensions(t *testing.T) {
	tests := []struct {
		format   Format
		selector string
		ext      string
	}{
		{FormatPng, "png", ".png"},
		{FormatSvg, "svg", ".svg"},
		{FormatPdf, "pdf", ".pdf"},
		{FormatCanon, "canon", ".dot"},
		{FormatPlain, "plain", ".txt"},
		{FormatPs2, "ps2", ".ps"},
		{FormatCmapx, "cmapx", ".map"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.selector, tt.format.Selector())
		assert.Equal(t, tt.ext, tt.format.Ext())
	}
}

func TestParseFormatRoundTripsEverySelector(t *testing.T) {
	for i := range formatTable {
		f := Format(i)
		parsed, err := ParseFormat(f.Selector())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
		assert.True(t, strings.HasPrefix(f.Ext(), "."), "extension of %s", f)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ParseFormat("hologram")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "out.png", OutputPath("out", FormatPng))
	assert.Equal(t, "out.png", OutputPath("out.png", FormatPng))
	assert.Equal(t, "dir/graph.svg", OutputPath("dir/graph", FormatSvg))
}

func TestTempOutputPathUnique(t *testing.T) {
	a := TempOutputPath(FormatPng)
	b := TempOutputPath(FormatPng)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
}
