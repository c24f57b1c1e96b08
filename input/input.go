// Package input holds the shared, mutable InputMonitoring state: a
// 128-entry scancode-indexed keyboard bitmap, the last key pressed and
// its derived ASCII value, and a small mouse button bitmap, per §4.7.
// Backends translate host key/mouse events into this shape; the
// application reads it back through the emulator.
//
// Grounded on _examples/original_source/src/input.rs (Keyboard, Mouse,
// NumCode) supplemented with the wider NumCode set and MouseButton enum
// implied by _examples/original_source/src/backend_sdl.rs's
// to_num_code/to_mouse_button, which that snapshot of input.rs predates.
package input

import "sync"

// NumKeys is the size of the scancode bitmap.
const NumKeys = 128

// NumCode is a stable scancode identifier mirroring IBM PC AT scancodes.
type NumCode uint8

const (
	None  NumCode = 0x00
	Bad   NumCode = 0xFF
	Return NumCode = 0x1C
	Escape NumCode = 0x01
	Space NumCode = 0x39
	BackSpace NumCode = 0x0E
	Tab   NumCode = 0x0F
	Alt   NumCode = 0x38
	Control NumCode = 0x1D
	CapsLock NumCode = 0x3A
	LShift NumCode = 0x2A
	RShift NumCode = 0x36
	UpArrow NumCode = 0x48
	DownArrow NumCode = 0x50
	LeftArrow NumCode = 0x4B
	RightArrow NumCode = 0x4D
	Insert NumCode = 0x52
	Delete NumCode = 0x53
	Home  NumCode = 0x47
	End   NumCode = 0x4F
	PgUp  NumCode = 0x49
	PgDn  NumCode = 0x51
	NumLock NumCode = 0x45
	ScrollLock NumCode = 0x46
	PrintScreen NumCode = 0x54
	Minus NumCode = 0x0C
	Equals NumCode = 0x0D
	LeftBracket NumCode = 0x1A
	RightBracket NumCode = 0x1B
	F1 NumCode = 0x3B
	F2 NumCode = 0x3C
	F3 NumCode = 0x3D
	F4 NumCode = 0x3E
	F5 NumCode = 0x3F
	F6 NumCode = 0x40
	F7 NumCode = 0x41
	F8 NumCode = 0x42
	F9 NumCode = 0x43
	F10 NumCode = 0x44
	F11 NumCode = 0x57
	F12 NumCode = 0x59
	Num1 NumCode = 0x02
	Num2 NumCode = 0x03
	Num3 NumCode = 0x04
	Num4 NumCode = 0x05
	Num5 NumCode = 0x06
	Num6 NumCode = 0x07
	Num7 NumCode = 0x08
	Num8 NumCode = 0x09
	Num9 NumCode = 0x0A
	Num0 NumCode = 0x0B
	A NumCode = 0x1E
	B NumCode = 0x30
	C NumCode = 0x2E
	D NumCode = 0x20
	E NumCode = 0x12
	F NumCode = 0x21
	G NumCode = 0x22
	H NumCode = 0x23
	I NumCode = 0x17
	J NumCode = 0x24
	K NumCode = 0x25
	L NumCode = 0x26
	M NumCode = 0x32
	N NumCode = 0x31
	O NumCode = 0x18
	P NumCode = 0x19
	Q NumCode = 0x10
	R NumCode = 0x13
	S NumCode = 0x1F
	T NumCode = 0x14
	U NumCode = 0x16
	V NumCode = 0x2F
	W NumCode = 0x11
	X NumCode = 0x2D
	Y NumCode = 0x15
	Z NumCode = 0x2C
)

// MouseButton is a stable mouse button identifier.
type MouseButton uint8

const (
	MouseNone   MouseButton = 0xFF
	MouseLeft   MouseButton = 0x00
	MouseRight  MouseButton = 0x01
	MouseMiddle MouseButton = 0x02
)

// numMouseButtons sizes the mouse bitmap (Left, Right, Middle).
const numMouseButtons = 3

// asciiTable maps a NumCode to its unshifted ASCII rune. Codes with no
// printable mapping (arrows, function keys, modifiers) are absent.
var asciiTable = map[NumCode]rune{
	Space: ' ', Return: '\n', Tab: '\t', BackSpace: '\b',
	Minus: '-', Equals: '=', LeftBracket: '[', RightBracket: ']',
	Num1: '1', Num2: '2', Num3: '3', Num4: '4', Num5: '5',
	Num6: '6', Num7: '7', Num8: '8', Num9: '9', Num0: '0',
	A: 'a', B: 'b', C: 'c', D: 'd', E: 'e', F: 'f', G: 'g', H: 'h',
	I: 'i', J: 'j', K: 'k', L: 'l', M: 'm', N: 'n', O: 'o', P: 'p',
	Q: 'q', R: 'r', S: 's', T: 't', U: 'u', V: 'v', W: 'w', X: 'x',
	Y: 'y', Z: 'z',
}

// shiftedAsciiTable overrides asciiTable entries for LShift/RShift held.
var shiftedAsciiTable = map[NumCode]rune{
	A: 'A', B: 'B', C: 'C', D: 'D', E: 'E', F: 'F', G: 'G', H: 'H',
	I: 'I', J: 'J', K: 'K', L: 'L', M: 'M', N: 'N', O: 'O', P: 'P',
	Q: 'Q', R: 'R', S: 'S', T: 'T', U: 'U', V: 'V', W: 'W', X: 'X',
	Y: 'Y', Z: 'Z',
}

// Keyboard is the 128-scancode pressed-state bitmap plus the last key
// observed and its derived ASCII rendering.
type Keyboard struct {
	Buttons   [NumKeys]bool
	LastScan  NumCode
	LastASCII rune
}

func (k *Keyboard) updateLastValue(code NumCode) {
	k.LastScan = code
	table := asciiTable
	if k.Buttons[LShift] || k.Buttons[RShift] {
		table = shiftedAsciiTable
	}
	if r, ok := table[code]; ok {
		k.LastASCII = r
	} else if r, ok := asciiTable[code]; ok {
		k.LastASCII = r
	}
}

// Mouse is the button-pressed bitmap for Left/Right/Middle.
type Mouse struct {
	Buttons [numMouseButtons]bool
}

// Monitoring is the process-wide shared input state. Backends mutate it
// from their event-pump goroutine; applications read it from the frame
// callback. All access is serialized through its mutex.
type Monitoring struct {
	mu       sync.Mutex
	keyboard Keyboard
	mouse    Mouse
}

// New returns an empty InputMonitoring with nothing pressed.
func New() *Monitoring {
	return &Monitoring{}
}

// SetKey marks code as pressed and updates LastScan/LastASCII.
func (m *Monitoring) SetKey(code NumCode) {
	if code == Bad {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyboard.Buttons[code] = true
	m.keyboard.updateLastValue(code)
}

// ClearKey marks code as released.
func (m *Monitoring) ClearKey(code NumCode) {
	if code == Bad {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyboard.Buttons[code] = false
}

// ClearKeyboard resets every scancode to released.
func (m *Monitoring) ClearKeyboard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyboard.Buttons = [NumKeys]bool{}
}

// KeyPressed reports whether any scancode is currently pressed.
func (m *Monitoring) KeyPressed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pressed := range m.keyboard.Buttons {
		if pressed {
			return true
		}
	}
	return false
}

// IsPressed reports whether a specific scancode is currently pressed.
func (m *Monitoring) IsPressed(code NumCode) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.Buttons[code]
}

// LastScan returns the most recently pressed scancode.
func (m *Monitoring) LastScan() NumCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.LastScan
}

// LastASCII returns the derived ASCII rendering of the last key press.
func (m *Monitoring) LastASCII() rune {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.LastASCII
}

// SetMouseButton marks a mouse button as pressed.
func (m *Monitoring) SetMouseButton(b MouseButton) {
	if b == MouseNone {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse.Buttons[b] = true
}

// ClearMouseButton marks a mouse button as released.
func (m *Monitoring) ClearMouseButton(b MouseButton) {
	if b == MouseNone {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse.Buttons[b] = false
}

// MouseButtonPressed reports whether a specific mouse button is down.
func (m *Monitoring) MouseButtonPressed(b MouseButton) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse.Buttons[b]
}
