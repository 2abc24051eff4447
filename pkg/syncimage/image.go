// Package syncimage serializes access to a shared ports.Image and
// ports.Random so that several goroutines can rasterize at once.
package syncimage

import (
	"image/color"
	"sync"

	"github.com/user/shapedraw/pkg/ports"
)

// Image wraps a ports.Image with a mutex.
type Image struct {
	mu    sync.Mutex
	inner ports.Image
}

// New wraps img. All writes must go through the returned Image.
func New(img ports.Image) *Image {
	return &Image{inner: img}
}

// SetPixel writes one pixel under the lock.
func (i *Image) SetPixel(x, y int, c color.RGBA) {
	i.mu.Lock()
	i.inner.SetPixel(x, y, c)
	i.mu.Unlock()
}

// Width returns the wrapped image width.
func (i *Image) Width() int {
	return i.inner.Width()
}

// Height returns the wrapped image height.
func (i *Image) Height() int {
	return i.inner.Height()
}

var _ ports.Image = (*Image)(nil)
