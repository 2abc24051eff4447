package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts canvas creation and image encoding.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodeImage encodes an image to the specified format.
	// quality is only used by FormatJPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas is an Image that can be snapshotted.
type Canvas interface {
	Image

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
)

// String returns the lower-case format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a format name or file extension (with or without dot).
// The second result is false if the name is not recognized.
func ParseImageFormat(s string) (ImageFormat, bool) {
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	switch s {
	case "png", "PNG":
		return FormatPNG, true
	case "jpg", "jpeg", "JPG", "JPEG":
		return FormatJPEG, true
	case "bmp", "BMP":
		return FormatBMP, true
	case "tif", "tiff", "TIF", "TIFF":
		return FormatTIFF, true
	default:
		return FormatPNG, false
	}
}
