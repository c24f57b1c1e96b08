// Package mode applies the register defaults for a VGA video mode, per
// §4.1. Grounded on _examples/original_source/src/lib.rs's
// setup_defaults/setup_mode_10/setup_mode_13.
package mode

import (
	"fmt"

	"github.com/Ragnaroek/vga-emu/regs"
)

const (
	Mode16Color640x350 uint8 = 0x10
	ModeX320x200       uint8 = 0x13
)

// Init sets the safe defaults and then the mode-specific defaults for
// the given video mode. Any mode other than 0x10 or 0x13 is a fatal
// configuration error.
func Init(r *regs.File, videoMode uint8) error {
	r.SetVideoMode(videoMode)
	setDefaults(r)

	switch videoMode {
	case Mode16Color640x350:
		setMode10(r)
	case ModeX320x200:
		setMode13(r)
	default:
		return fmt.Errorf("%w: only 0x10 and 0x13 are implemented", regs.ErrUnsupportedVideoMode(videoMode))
	}
	return nil
}

func setDefaults(r *regs.File) {
	r.SetCRT(regs.CRTOffset, 40)
	r.SetGC(regs.GCBitMask, 0xFF)
}

func setMode10(r *regs.File) {
	r.SetSC(regs.SCMemoryMode, 0x04) // chain-4 off, odd/even off
	r.SetCRT(regs.CRTMaximumScanLine, 0x00)
	r.SetHorizontalDisplayEnd(640)
	r.SetVerticalDisplayEnd(350)
}

func setMode13(r *regs.File) {
	r.SetSC(regs.SCMemoryMode, 0x08) // chain-4 on, odd/even on
	r.SetCRT(regs.CRTMaximumScanLine, 0x01)
	r.SetHorizontalDisplayEnd(640)
	r.SetVerticalDisplayEnd(400)
}
