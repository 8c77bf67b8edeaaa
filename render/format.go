package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Format is a renderer output format. Each format carries the selector
// string passed to the engine's -T flag and a default file extension;
// the table is pure data mirroring the renderer's own format list.
type Format int

const (
	FormatBmp Format = iota
	FormatCanon
	FormatDot
	FormatXdot
	FormatEps
	FormatFig
	FormatGd
	FormatGd2
	FormatGif
	FormatIco
	FormatImap
	FormatCmapx
	FormatJpg
	FormatJpeg
	FormatJson
	FormatPdf
	FormatPic
	FormatPlain
	FormatPlainExt
	FormatPng
	FormatPov
	FormatPs
	FormatPs2
	FormatSvg
	FormatSvgz
	FormatTga
	FormatTif
	FormatTiff
	FormatTk
	FormatVml
	FormatVmlz
	FormatWbmp
	FormatWebp
)

var formatTable = [...]struct {
	selector string
	ext      string
}{
	FormatBmp:      {"bmp", ".bmp"},
	FormatCanon:    {"canon", ".dot"},
	FormatDot:      {"dot", ".dot"},
	FormatXdot:     {"xdot", ".xdot"},
	FormatEps:      {"eps", ".eps"},
	FormatFig:      {"fig", ".fig"},
	FormatGd:       {"gd", ".gd"},
	FormatGd2:      {"gd2", ".gd2"},
	FormatGif:      {"gif", ".gif"},
	FormatIco:      {"ico", ".ico"},
	FormatImap:     {"imap", ".map"},
	FormatCmapx:    {"cmapx", ".map"},
	FormatJpg:      {"jpg", ".jpg"},
	FormatJpeg:     {"jpeg", ".jpeg"},
	FormatJson:     {"json", ".json"},
	FormatPdf:      {"pdf", ".pdf"},
	FormatPic:      {"pic", ".pic"},
	FormatPlain:    {"plain", ".txt"},
	FormatPlainExt: {"plain-ext", ".txt"},
	FormatPng:      {"png", ".png"},
	FormatPov:      {"pov", ".pov"},
	FormatPs:       {"ps", ".ps"},
	FormatPs2:      {"ps2", ".ps"},
	FormatSvg:      {"svg", ".svg"},
	FormatSvgz:     {"svgz", ".svgz"},
	FormatTga:      {"tga", ".tga"},
	FormatTif:      {"tif", ".tif"},
	FormatTiff:     {"tiff", ".tiff"},
	FormatTk:       {"tk", ".tk"},
	FormatVml:      {"vml", ".vml"},
	FormatVmlz:     {"vmlz", ".vmlz"},
	FormatWbmp:     {"wbmp", ".wbmp"},
	FormatWebp:     {"webp", ".webp"},
}

// Selector returns the string passed to the engine's -T flag.
func (f Format) Selector() string {
	if int(f) < 0 || int(f) >= len(formatTable) {
		return "unknown"
	}
	return formatTable[f].selector
}

// Ext returns the format's default file extension, including the dot.
func (f Format) Ext() string {
	if int(f) < 0 || int(f) >= len(formatTable) {
		return ""
	}
	return formatTable[f].ext
}

func (f Format) String() string { return f.Selector() }

// ParseFormat resolves a -T selector string to a Format.
func ParseFormat(s string) (Format, error) {
	for i, entry := range formatTable {
		if entry.selector == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q", s)
}

// OutputPath appends f's default extension to base unless base already
// ends with it.
func OutputPath(base string, f Format) string {
	if strings.HasSuffix(base, f.Ext()) {
		return base
	}
	return base + f.Ext()
}

// TempOutputPath returns a unique path in the system temp directory with
// f's default extension.
func TempOutputPath(f Format) string {
	return filepath.Join(os.TempDir(), "graphviz-"+uuid.NewString()+f.Ext())
}
