package mocks

import (
	"image"
	"image/color"

	"github.com/user/shapedraw/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	// Formats records the format of every EncodeImage call.
	Formats []ports.ImageFormat
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.Formats = append(m.Formats, format)
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte(format.String()), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas. It records writes like
// Image and keeps an RGBA copy of in-range pixels for ToImage.
type Canvas struct {
	*Image
	img *image.RGBA
}

// NewCanvas creates a mock canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Image: NewImage(width, height),
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (m *Canvas) SetPixel(x, y int, c color.RGBA) {
	m.Image.SetPixel(x, y, c)
	m.mu.Lock()
	m.img.SetRGBA(x, y, c)
	m.mu.Unlock()
}

func (m *Canvas) ToImage() image.Image {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
