package retouch

import "github.com/gogpu/retouch/internal/codec"

// DefaultExportName is the file name offered when saving an edit.
const DefaultExportName = "edited-image.png"

// Format is an export file format.
type Format = codec.Format

// Export formats.
const (
	FormatPNG  = codec.PNG
	FormatJPEG = codec.JPEG
	FormatBMP  = codec.BMP
	FormatTIFF = codec.TIFF
)

// FormatFromName picks an export format from a file name's extension.
// Names without an extension are PNG.
func FormatFromName(name string) (Format, error) {
	return codec.FormatFromName(name)
}

// ParseFormat parses a format name such as "png", "jpg" or "tiff".
func ParseFormat(s string) (Format, error) {
	return codec.ParseFormat(s)
}
