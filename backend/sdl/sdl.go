// Package sdl implements backend.Backend on top of go-sdl2: a window, a
// renderer, and an RGB24 streaming texture, plus translation of SDL key
// and mouse events into input.NumCode/input.MouseButton state.
//
// Grounded on _examples/newhook-6502/c64/c64/c64.go's NewC64/RenderFrame/
// Cleanup (window/renderer/texture lifecycle and the poll-events-then-
// present loop) and _examples/original_source/src/backend_sdl.rs's
// RenderContext (draw_frame/handle_keys/update_inputs/to_num_code,
// translated from sdl3 to go-sdl2's event model).
package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Ragnaroek/vga-emu/backend"
	"github.com/Ragnaroek/vga-emu/input"
)

// Backend is the go-sdl2-backed backend.Backend implementation.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
	width    int
	height   int
}

// New returns an uninitialized backend; call Init before use.
func New() *Backend {
	return &Backend{}
}

// Init creates the window, accelerated renderer and RGB24 streaming
// texture sized width x height.
func (b *Backend) Init(title string, width, height int, fullscreen bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init video: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		return fmt.Errorf("sdl: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("sdl: create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGB24),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return fmt.Errorf("sdl: create texture: %w", err)
	}

	b.window = window
	b.renderer = renderer
	b.texture = texture
	b.width = width
	b.height = height
	b.pixels = make([]byte, width*height*3)
	return nil
}

// BeginFrame returns a FrameBuffer wrapping the backend's own pixel
// scratch buffer for the caller to rasterize into.
func (b *Backend) BeginFrame() (backend.FrameBuffer, error) {
	return backend.FrameBuffer{
		Pixels: b.pixels,
		Width:  b.width,
		Height: b.height,
		Pitch:  b.width * 3,
	}, nil
}

// EndFrame uploads the scratch buffer, presents it, and drains the SDL
// event queue into mon.
func (b *Backend) EndFrame(mon *input.Monitoring) (bool, error) {
	if err := b.texture.Update(nil, b.pixels, b.width*3); err != nil {
		return false, fmt.Errorf("sdl: update texture: %w", err)
	}
	if err := b.renderer.Clear(); err != nil {
		return false, fmt.Errorf("sdl: clear: %w", err)
	}
	if err := b.renderer.Copy(b.texture, nil, nil); err != nil {
		return false, fmt.Errorf("sdl: copy: %w", err)
	}
	b.renderer.Present()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			code := toNumCode(e.Keysym.Sym)
			if code == input.Bad {
				break
			}
			if e.State == sdl.PRESSED {
				mon.SetKey(code)
			} else {
				mon.ClearKey(code)
			}
		case *sdl.MouseButtonEvent:
			button := toMouseButton(e.Button)
			if button == input.MouseNone {
				break
			}
			if e.State == sdl.PRESSED {
				mon.SetMouseButton(button)
			} else {
				mon.ClearMouseButton(button)
			}
		}
	}
	return quit, nil
}

// SetFullscreen toggles the window between fullscreen-desktop and
// windowed presentation.
func (b *Backend) SetFullscreen(fullscreen bool) error {
	flags := uint32(0)
	if fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := b.window.SetFullscreen(flags); err != nil {
		return fmt.Errorf("sdl: set fullscreen: %w", err)
	}
	return nil
}

// Close tears down the texture, renderer, window and SDL subsystem.
func (b *Backend) Close() error {
	if b.texture != nil {
		b.texture.Destroy()
	}
	if b.renderer != nil {
		b.renderer.Destroy()
	}
	if b.window != nil {
		b.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func toNumCode(key sdl.Keycode) input.NumCode {
	switch key {
	case sdl.K_BACKSPACE:
		return input.BackSpace
	case sdl.K_TAB:
		return input.Tab
	case sdl.K_RETURN:
		return input.Return
	case sdl.K_ESCAPE:
		return input.Escape
	case sdl.K_SPACE:
		return input.Space
	case sdl.K_LALT, sdl.K_RALT:
		return input.Alt
	case sdl.K_LCTRL, sdl.K_RCTRL:
		return input.Control
	case sdl.K_CAPSLOCK:
		return input.CapsLock
	case sdl.K_LSHIFT:
		return input.LShift
	case sdl.K_RSHIFT:
		return input.RShift
	case sdl.K_UP:
		return input.UpArrow
	case sdl.K_DOWN:
		return input.DownArrow
	case sdl.K_LEFT:
		return input.LeftArrow
	case sdl.K_RIGHT:
		return input.RightArrow
	case sdl.K_INSERT:
		return input.Insert
	case sdl.K_DELETE:
		return input.Delete
	case sdl.K_NUMLOCKCLEAR:
		return input.NumLock
	case sdl.K_SCROLLLOCK:
		return input.ScrollLock
	case sdl.K_PRINTSCREEN:
		return input.PrintScreen
	case sdl.K_HOME:
		return input.Home
	case sdl.K_END:
		return input.End
	case sdl.K_PAGEUP:
		return input.PgUp
	case sdl.K_PAGEDOWN:
		return input.PgDn
	case sdl.K_MINUS:
		return input.Minus
	case sdl.K_EQUALS:
		return input.Equals
	case sdl.K_LEFTBRACKET:
		return input.LeftBracket
	case sdl.K_RIGHTBRACKET:
		return input.RightBracket
	case sdl.K_F1:
		return input.F1
	case sdl.K_F2:
		return input.F2
	case sdl.K_F3:
		return input.F3
	case sdl.K_F4:
		return input.F4
	case sdl.K_F5:
		return input.F5
	case sdl.K_F6:
		return input.F6
	case sdl.K_F7:
		return input.F7
	case sdl.K_F8:
		return input.F8
	case sdl.K_F9:
		return input.F9
	case sdl.K_F10:
		return input.F10
	case sdl.K_F11:
		return input.F11
	case sdl.K_F12:
		return input.F12
	case sdl.K_1:
		return input.Num1
	case sdl.K_2:
		return input.Num2
	case sdl.K_3:
		return input.Num3
	case sdl.K_4:
		return input.Num4
	case sdl.K_5:
		return input.Num5
	case sdl.K_6:
		return input.Num6
	case sdl.K_7:
		return input.Num7
	case sdl.K_8:
		return input.Num8
	case sdl.K_9:
		return input.Num9
	case sdl.K_0:
		return input.Num0
	case sdl.K_a:
		return input.A
	case sdl.K_b:
		return input.B
	case sdl.K_c:
		return input.C
	case sdl.K_d:
		return input.D
	case sdl.K_e:
		return input.E
	case sdl.K_f:
		return input.F
	case sdl.K_g:
		return input.G
	case sdl.K_h:
		return input.H
	case sdl.K_i:
		return input.I
	case sdl.K_j:
		return input.J
	case sdl.K_k:
		return input.K
	case sdl.K_l:
		return input.L
	case sdl.K_m:
		return input.M
	case sdl.K_n:
		return input.N
	case sdl.K_o:
		return input.O
	case sdl.K_p:
		return input.P
	case sdl.K_q:
		return input.Q
	case sdl.K_r:
		return input.R
	case sdl.K_s:
		return input.S
	case sdl.K_t:
		return input.T
	case sdl.K_u:
		return input.U
	case sdl.K_v:
		return input.V
	case sdl.K_w:
		return input.W
	case sdl.K_x:
		return input.X
	case sdl.K_y:
		return input.Y
	case sdl.K_z:
		return input.Z
	default:
		return input.Bad
	}
}

func toMouseButton(btn uint8) input.MouseButton {
	switch btn {
	case sdl.BUTTON_LEFT:
		return input.MouseLeft
	case sdl.BUTTON_RIGHT:
		return input.MouseRight
	case sdl.BUTTON_MIDDLE:
		return input.MouseMiddle
	default:
		return input.MouseNone
	}
}
