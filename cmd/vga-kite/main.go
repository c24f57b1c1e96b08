// Command vga-kite reconstructs the background scene from Michael
// Abrash's kite demo (chapter 49 of the Black Book): a painted
// landscape split across three Mode X pages (two front buffers plus a
// shared background source), with smoke puffs blitted in via a masked
// copy.
//
// Grounded line-for-line on
// _examples/original_source/examples/kite/src/lib.rs's start_kite/
// draw_background.
package main

import (
	"log"
	"time"

	sdlbackend "github.com/Ragnaroek/vga-emu/backend/sdl"
	"github.com/Ragnaroek/vga-emu/regs"
	"github.com/Ragnaroek/vga-emu/vga"
)

const (
	screenWidth      = 320
	screenHeight     = 240
	page0StartOffset = 0
	page1StartOffset = (screenHeight * screenWidth) / 4
	bgStartOffset    = (screenHeight * screenWidth * 2) / 4
	smokeWidth       = 7
	smokeHeight      = 7
)

var greenAndBrownPattern = [16]byte{2, 6, 2, 6, 6, 2, 6, 2, 2, 6, 2, 6, 6, 2, 6, 2}
var pineTreePattern = [16]byte{2, 2, 2, 2, 2, 6, 2, 6, 2, 2, 6, 2, 2, 2, 2, 2}
var brickPattern = [16]byte{6, 6, 7, 6, 7, 7, 7, 7, 7, 6, 6, 6, 7, 7, 7, 7}
var roofPattern = [16]byte{8, 8, 8, 7, 7, 7, 7, 7, 8, 8, 8, 7, 8, 8, 8, 7}

var smokePixels = []byte{
	0, 0, 15, 15, 15, 0, 0, 0, 7, 7, 15, 15, 15, 0, 8, 7, 7, 7, 15, 15, 15, 8, 7, 7, 7, 7, 15, 15,
	0, 8, 7, 7, 7, 7, 15, 0, 0, 8, 7, 7, 7, 0, 0, 0, 0, 8, 8, 0, 0,
}
var smokeMask = []byte{
	0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0,
}

func main() {
	do := func() error {
		emu, err := vga.NewBuilder().
			VideoMode(0x13).
			Title("VGA Kite Example").
			Backend(sdlbackend.New()).
			Build()
		if err != nil {
			return err
		}
		defer emu.Close()

		memMode := emu.GetSCData(regs.SCMemoryMode)
		emu.SetSCData(regs.SCMemoryMode, (memMode &^ 0x08) | 0x04)
		emu.Regs.SetVerticalDisplayEnd(480)

		drawBackground(emu, bgStartOffset)
		emu.CopyScreenToScreenX(0, 0, screenWidth, screenHeight, 0, 0, bgStartOffset, page0StartOffset, screenWidth, screenWidth)
		emu.CopyScreenToScreenX(0, 0, screenWidth, screenHeight, 0, 0, bgStartOffset, page1StartOffset, screenWidth, screenWidth)

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
		log.Fatal("vga-kite: ", err)
	}
}

func drawBackground(emu *vga.VGA, pageStart int) {
	emu.FillRectangleX(0, 0, screenWidth, screenHeight, pageStart, 11)
	emu.FillPatternX(0, 160, screenWidth, screenHeight, pageStart, greenAndBrownPattern)
	emu.FillRectangleX(0, screenHeight-30, screenWidth, screenHeight, pageStart, 1)

	for i := 0; i < 120; i++ {
		emu.FillRectangleX(screenWidth/2-30-i, 51+i, screenWidth/2-30+i+1, 51+i+1, pageStart, 6)
	}

	for i := 0; i <= 21; i++ {
		tmp := sqrtInt(20*20-i*i) + 0
		emu.FillRectangleX(screenWidth-25-i, 30-tmp, screenWidth-25+i+1, 30+tmp+1, pageStart, 14)
	}

	for i := 10; i < 90; i += 15 {
		for j := 0; j < 20; j++ {
			emu.FillPatternX(screenWidth/2+i-j/3-15, i+j+51, screenWidth/2+i+j/3-15+1, i+j+51+1, pageStart, pineTreePattern)
		}
	}

	emu.FillPatternX(265, 150, 295, 170, pageStart, brickPattern)
	emu.FillPatternX(265, 130, 270, 150, pageStart, brickPattern)
	for i := 0; i < 12; i++ {
		emu.FillPatternX(280-i*2, 138+i, 280+i*2+1, 138+i+1, pageStart, roofPattern)
	}

	for i := 0; i < 4; i++ {
		emu.CopySystemToScreenMaskedX(0, 0, smokeWidth, smokeHeight, 264, 110-i*20, smokePixels, pageStart, smokeWidth, screenWidth, smokeMask)
	}
}

// sqrtInt mirrors the floating-point radius calculation from the
// original's sun-disc rasterization, rounded the same way ((...) +
// 0.5).sqrt() truncated to an integer).
func sqrtInt(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	for x*x > v {
		x = (x + v/x) / 2
	}
	for (x+1)*(x+1) <= v {
		x++
	}
	return x
}
