// Package backend defines the host windowing/input contract the
// emulator drives every frame: receive a rasterized RGB24 frame, poll
// host events into input.Monitoring, and report whether the user asked
// to quit. Concrete backends (backend/sdl) implement it; §6 names this
// the "external backend" and marks it out of scope for the core
// emulator, so the contract lives in its own package and the core
// module never imports a concrete implementation.
//
// Grounded on _examples/original_source/src/backend_sdl.rs's
// RenderContext (draw_frame/handle_keys/update_inputs), adapted from a
// single monolithic render context into a small interface so the core
// emulator can remain backend-agnostic, matching
// _examples/newhook-6502/c64/c64/c64.go's separation between the core
// machine and its SDL rendering loop.
package backend

import "github.com/Ragnaroek/vga-emu/input"

// FrameBuffer is the RGB24 frame surface a Backend exposes for one
// frame's worth of pixels: Width*Height*3 bytes, row-major, Pitch bytes
// per row (Pitch may exceed Width*3 when the backend pads rows).
type FrameBuffer struct {
	Pixels []byte
	Width  int
	Height int
	Pitch  int
}

// Backend is the host windowing/input surface the emulator drives.
type Backend interface {
	// Init creates the window/renderer sized for width x height pixels.
	Init(title string, width, height int, fullscreen bool) error

	// BeginFrame returns a FrameBuffer the caller may write pixels into
	// for the current frame.
	BeginFrame() (FrameBuffer, error)

	// EndFrame presents the frame written via BeginFrame and polls host
	// events into mon, translating them into key/mouse state. It
	// reports whether the user requested to quit (window close, Alt+F4
	// equivalent).
	EndFrame(mon *input.Monitoring) (quit bool, err error)

	// SetFullscreen toggles fullscreen presentation.
	SetFullscreen(fullscreen bool) error

	// Close releases all host resources.
	Close() error
}
