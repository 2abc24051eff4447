package mocks

import (
	"image"
	"sync"

	"github.com/user/shapedraw/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Scene    []byte
	Snapshot image.Image

	SaveSceneFunc    func(data []byte) error
	SaveSnapshotFunc func(img image.Image) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveScene(data []byte) error {
	if m.SaveSceneFunc != nil {
		return m.SaveSceneFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Scene = data
	return nil
}

func (m *DebugSink) SaveSnapshot(img image.Image) error {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshot = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
