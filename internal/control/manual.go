package control

import (
	"sync"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// Manual holds the keys an interactive host reports. Engine switches are
// edge-triggered: a press is delivered once on the next Command.
type Manual struct {
	mu      sync.Mutex
	left    bool
	right   bool
	pending Engine
}

func NewManual() *Manual {
	return &Manual{}
}

// SetRotation records which rotation keys are held.
func (m *Manual) SetRotation(left, right bool) {
	m.mu.Lock()
	m.left, m.right = left, right
	m.mu.Unlock()
}

// PressEngine queues an engine switch.
func (m *Manual) PressEngine(on bool) {
	m.mu.Lock()
	if on {
		m.pending = EngineOn
	} else {
		m.pending = EngineOff
	}
	m.mu.Unlock()
}

func (m *Manual) Command(c dynamo.Craft, t float64) Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := Command{RotateLeft: m.left, RotateRight: m.right, Engine: m.pending}
	m.pending = EngineKeep
	return cmd
}
