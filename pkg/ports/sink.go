package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveScene saves the resolved scene description (YAML).
	SaveScene(data []byte) error

	// SaveSnapshot saves the raw canvas after rasterization.
	SaveSnapshot(img image.Image) error
}
