// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/shapedraw/pkg/ports"
)

const (
	sceneFile    = "scene.yaml"
	snapshotFile = "snapshot.png"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveScene saves the resolved scene as YAML.
func (s *Sink) SaveScene(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, sceneFile), data)
}

// SaveSnapshot saves the unscaled canvas as PNG.
func (s *Sink) SaveSnapshot(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, snapshotFile), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
