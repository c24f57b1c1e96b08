// Command vga-palette renders a 16x16 grid of color swatches in Mode X,
// optionally loading a custom 768-byte palette file named on the
// command line.
//
// Grounded on _examples/original_source/examples/palette/src/lib.rs's
// start_palette, styled after
// _examples/newhook-6502/c64emu/main.go's do()-error top-level loop.
package main

import (
	"log"
	"os"
	"time"

	sdlbackend "github.com/Ragnaroek/vga-emu/backend/sdl"
	"github.com/Ragnaroek/vga-emu/regs"
	"github.com/Ragnaroek/vga-emu/vga"
)

const (
	screenWidth  = 320
	screenHeight = 200
	cubeSize     = 10
	paletteSize  = 16
)

func main() {
	do := func() error {
		emu, err := vga.NewBuilder().
			VideoMode(0x13).
			Title("VGA Palette Example").
			Backend(sdlbackend.New()).
			Build()
		if err != nil {
			return err
		}
		defer emu.Close()

		memMode := emu.GetSCData(regs.SCMemoryMode)
		emu.SetSCData(regs.SCMemoryMode, (memMode &^ 0x08) | 0x04)

		if len(os.Args) == 2 {
			f, err := os.Open(os.Args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := emu.Palette.LoadFile(f); err != nil {
				return err
			}
		}

		emu.FillRectangleX(0, 0, screenWidth, screenHeight, 0, 0)

		total := paletteSize*(cubeSize+1) - 1
		xStart := (screenWidth - total) / 2
		yStart := (screenHeight - total) / 2

		for w := 0; w < paletteSize; w++ {
			for h := 0; h < paletteSize; h++ {
				x := xStart + w*(cubeSize+1)
				y := yStart + h*(cubeSize+1)
				emu.FillRectangleX(x, y, x+cubeSize, y+cubeSize, 0, uint8(h*paletteSize+w))
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
		log.Fatal("vga-palette: ", err)
	}
}
