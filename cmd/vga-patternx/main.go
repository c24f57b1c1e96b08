// Command vga-patternx demonstrates draw.FillPatternX: the same tiled
// 4x4 patterns used as terrain fills in the kite demo, laid out as
// horizontal stripes so each pattern is individually visible.
//
// The original vga-patternx example's source was not part of the
// material this module was built from; this reuses the pattern tables
// from _examples/original_source/examples/kite/src/lib.rs
// (GREEN_AND_BROWN_PATTERN, PINE_TREE_PATTERN, BRICK_PATTERN,
// ROOF_PATTERN) in a standalone demo.
package main

import (
	"log"
	"time"

	sdlbackend "github.com/Ragnaroek/vga-emu/backend/sdl"
	"github.com/Ragnaroek/vga-emu/regs"
	"github.com/Ragnaroek/vga-emu/vga"
)

const (
	screenWidth  = 320
	screenHeight = 200
	stripeHeight = 50
)

var greenAndBrown = [16]byte{2, 6, 2, 6, 6, 2, 6, 2, 2, 6, 2, 6, 6, 2, 6, 2}
var pineTree = [16]byte{2, 2, 2, 2, 2, 6, 2, 6, 2, 2, 6, 2, 2, 2, 2, 2}
var brick = [16]byte{6, 6, 7, 6, 7, 7, 7, 7, 7, 6, 6, 6, 7, 7, 7, 7}
var roof = [16]byte{8, 8, 8, 7, 7, 7, 7, 7, 8, 8, 8, 7, 8, 8, 8, 7}

func main() {
	do := func() error {
		emu, err := vga.NewBuilder().
			VideoMode(0x13).
			Title("VGA PatternX Example").
			Backend(sdlbackend.New()).
			Build()
		if err != nil {
			return err
		}
		defer emu.Close()

		memMode := emu.GetSCData(regs.SCMemoryMode)
		emu.SetSCData(regs.SCMemoryMode, (memMode &^ 0x08) | 0x04)

		emu.FillRectangleX(0, 0, screenWidth, screenHeight, 0, 0)

		patterns := [][16]byte{greenAndBrown, pineTree, brick, roof}
		for i, pattern := range patterns {
			y := i * stripeHeight
			emu.FillPatternX(0, y, screenWidth, y+stripeHeight, 0, pattern)
		}

		for {
			quit, err := emu.DrawFrame()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			time.Sleep(14 * time.Millisecond)
		}
	}
	if err := do(); err != nil {
		log.Fatal("vga-patternx: ", err)
	}
}
