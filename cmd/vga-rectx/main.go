// Command vga-rectx is a minimal demonstration of draw.FillRectangleX:
// a grid of flat-colored rectangles covering the Mode X screen on page
// 0, exercising right clip-mask boundaries not covered by the other
// demos.
//
// The original vga-rectx example's source was not part of the material
// this module was built from; this reimplements it against the
// draw package's own FillRectangleX contract in the same style as
// _examples/original_source/examples/palette/src/lib.rs's start_palette.
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
	cellSize     = 20
)

func main() {
	do := func() error {
		emu, err := vga.NewBuilder().
			VideoMode(0x13).
			Title("VGA RectX Example").
			Backend(sdlbackend.New()).
			Build()
		if err != nil {
			return err
		}
		defer emu.Close()

		memMode := emu.GetSCData(regs.SCMemoryMode)
		emu.SetSCData(regs.SCMemoryMode, (memMode &^ 0x08) | 0x04)

		emu.FillRectangleX(0, 0, screenWidth, screenHeight, 0, 0)

		color := uint8(1)
		for y := 0; y < screenHeight; y += cellSize {
			for x := 0; x < screenWidth; x += cellSize {
				endX := x + cellSize - 2
				endY := y + cellSize - 2
				if endX > screenWidth {
					endX = screenWidth
				}
				if endY > screenHeight {
					endY = screenHeight
				}
				emu.FillRectangleX(x, y, endX, endY, 0, color)
				color++
				if color == 0 {
					color = 1
				}
			}
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
		log.Fatal("vga-rectx: ", err)
	}
}
