// Package null implements a backend.Backend that does no real host I/O:
// BeginFrame hands back an in-memory pixel buffer, EndFrame discards it
// and reports a quit request only when the Quit field is set. It's the
// offscreen backend used by
// headless tooling (cmd/vga-inspect) and by tests that need a real
// *vga.VGA without a window, matching _examples/newhook-6502/c64emu's
// split between the machine and its renderer: the renderer here is
// simply a no-op.
package null

import (
	"github.com/Ragnaroek/vga-emu/backend"
	"github.com/Ragnaroek/vga-emu/input"
)

// Backend is a no-op backend.Backend. Quit reports the value EndFrame
// should return on every call; tests can flip it to exercise the quit
// path without a real window.
type Backend struct {
	Quit bool

	pixels []byte
	width  int
	height int
}

// New returns a Backend not yet sized by Init.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) Init(title string, width, height int, fullscreen bool) error {
	b.width = width
	b.height = height
	b.pixels = make([]byte, width*height*3)
	return nil
}

func (b *Backend) BeginFrame() (backend.FrameBuffer, error) {
	return backend.FrameBuffer{
		Pixels: b.pixels,
		Width:  b.width,
		Height: b.height,
		Pitch:  b.width * 3,
	}, nil
}

func (b *Backend) EndFrame(mon *input.Monitoring) (bool, error) {
	return b.Quit, nil
}

func (b *Backend) SetFullscreen(fullscreen bool) error { return nil }

func (b *Backend) Close() error { return nil }
