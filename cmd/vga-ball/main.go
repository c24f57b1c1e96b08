// Command vga-ball reconstructs Michael Abrash's bouncing-ball demo
// (chapter 23 of the Black Book): four balls following scripted
// bounce paths over a bordered background, double-buffered with
// horizontal pixel panning, all in Mode X.
//
// Grounded line-for-line on
// _examples/original_source/examples/ball/src/lib.rs's start_ball/
// draw_ball/draw_border/adjust_panning.
package main

import (
	"log"
	"time"

	sdlbackend "github.com/Ragnaroek/vga-emu/backend/sdl"
	"github.com/Ragnaroek/vga-emu/regs"
	"github.com/Ragnaroek/vga-emu/vga"
)

const (
	logicalScreenWidth  = 672 / 8
	logicalScreenHeight = 384
	page1                = 1
	page0Offset          = 0
	page1Offset          = logicalScreenWidth * logicalScreenHeight
	ballWidth            = 24 / 8
	ballHeight           = 24
	blankOffset          = page1Offset * 2
	ballOffset           = blankOffset + ballWidth*ballHeight
	numBalls             = 4
)

var ball0Control = [13]int16{10, 1, 4, 10, -1, 4, 10, -1, -4, 10, 1, -4, 0}
var ball1Control = [13]int16{12, -1, 1, 28, -1, -1, 12, 1, -1, 28, 1, 1, 0}
var ball2Control = [13]int16{20, 0, -1, 40, 0, 1, 20, 0, -1, 0, 0, 0, 0}
var ball3Control = [13]int16{8, 1, 0, 52, -1, 0, 44, 1, 0, 0, 0, 0, 0}
var ballControlString = [numBalls][13]int16{ball0Control, ball1Control, ball2Control, ball3Control}
var panningControlString = [13]int16{32, 1, 0, 34, 0, 1, 32, -1, 0, 34, 0, -1, 0}

var plane1Data = []byte{
	0x00, 0x3c, 0x00, 0x01, 0xff, 0x80,
	0x07, 0xff, 0xe0, 0x0f, 0xff, 0xf0,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x7f, 0xff, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x7f, 0xff, 0xfe, 0x3f, 0xff, 0xfc,
	0x3f, 0xff, 0xfc, 0x1f, 0xff, 0xf8,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

var plane2Data = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x1f, 0xff, 0xf8, 0x3f, 0xff, 0xfc,
	0x3f, 0xff, 0xfc, 0x7f, 0xff, 0xfe,
	0x7f, 0xff, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x0f, 0xff, 0xf0, 0x07, 0xff, 0xe0,
	0x01, 0xff, 0x80, 0x00, 0x3c, 0x00,
}

var plane3Data = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0x7f, 0xff, 0xfe,
	0x7f, 0xff, 0xfe, 0x3f, 0xff, 0xfc,
	0x3f, 0xff, 0xfc, 0x1f, 0xff, 0xf8,
	0x0f, 0xff, 0xf0, 0x07, 0xff, 0xe0,
	0x01, 0xff, 0x80, 0x00, 0x3c, 0x00,
}

var plane4Data = []byte{
	0x00, 0x3c, 0x00, 0x01, 0xff, 0x80,
	0x07, 0xff, 0xe0, 0x0f, 0xff, 0xf0,
	0x1f, 0xff, 0xf8, 0x3f, 0xff, 0xfc,
	0x3f, 0xff, 0xfc, 0x7f, 0xff, 0xfe,
	0x7f, 0xff, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0x7f, 0xff, 0xfe,
	0x7f, 0xff, 0xfe, 0x3f, 0xff, 0xfc,
	0x3f, 0xff, 0xfc, 0x1f, 0xff, 0xf8,
	0x0f, 0xff, 0xf0, 0x07, 0xff, 0xe0,
	0x01, 0xff, 0x80, 0x00, 0x3c, 0x00,
}

type panningState struct {
	hpan               int16
	panningRep         int16
	panningXInc        int16
	panningYInc        int16
	panningStartOffset int
	panningControl     int
}

type renderState struct {
	ballX, ballY         [numBalls]int
	lastBallX, lastBallY [numBalls]int
	ballXInc, ballYInc   [numBalls]int16
	ballRep              [numBalls]int16
	ballControl          [numBalls]int

	currentPage       int
	currentPageOffset int

	panning panningState
}

func initialRenderState() renderState {
	return renderState{
		ballX:             [numBalls]int{15, 50, 40, 70},
		ballY:             [numBalls]int{40, 200, 110, 300},
		lastBallX:         [numBalls]int{15, 50, 40, 70},
		lastBallY:         [numBalls]int{40, 200, 110, 300},
		ballXInc:          [numBalls]int16{1, 1, 1, 1},
		ballYInc:          [numBalls]int16{8, 8, 8, 8},
		ballRep:           [numBalls]int16{1, 1, 1, 1},
		currentPage:       page1,
		currentPageOffset: page1Offset,
		panning:           panningState{panningRep: 1, panningXInc: 1, panningYInc: 1},
	}
}

func main() {
	do := func() error {
		emu, err := vga.NewBuilder().
			VideoMode(0x13).
			Title("VGA Ball Example").
			SimulateVerticalReset().
			Backend(sdlbackend.New()).
			Build()
		if err != nil {
			return err
		}
		defer emu.Close()

		drawBorder(emu, page0Offset)
		drawBorder(emu, page1Offset)

		emu.SetSCData(regs.SCMapMask, 0x01)
		emu.WriteMemChunk(ballOffset, plane1Data)
		emu.SetSCData(regs.SCMapMask, 0x02)
		emu.WriteMemChunk(ballOffset, plane2Data)
		emu.SetSCData(regs.SCMapMask, 0x04)
		emu.WriteMemChunk(ballOffset, plane3Data)
		emu.SetSCData(regs.SCMapMask, 0x08)
		emu.WriteMemChunk(ballOffset, plane4Data)

		emu.SetSCData(regs.SCMapMask, 0x0F)
		for i := 0; i < ballWidth*ballHeight; i++ {
			emu.WriteMem(blankOffset+i, 0x00)
		}

		emu.SetCRTData(regs.CRTOffset, uint8(logicalScreenWidth/2))

		gcMode := emu.GetGCData(regs.GCGraphicsMode)
		gcMode &^= 0xFC
		gcMode |= 0x01
		emu.SetGCData(regs.GCGraphicsMode, gcMode)

		state := initialRenderState()

		for {
			for bx := numBalls - 1; bx >= 0; bx-- {
				drawBall(emu, blankOffset, state.currentPageOffset, state.lastBallX[bx], state.lastBallY[bx])

				state.lastBallX[bx] = state.ballX[bx]
				state.lastBallY[bx] = state.ballY[bx]

				state.ballRep[bx]--
				if state.ballRep[bx] == 0 {
					bcPtr := state.ballControl[bx]
					if ballControlString[bx][bcPtr] == 0 {
						bcPtr = 0
					}
					state.ballRep[bx] = ballControlString[bx][bcPtr]
					state.ballXInc[bx] = ballControlString[bx][bcPtr+1]
					state.ballYInc[bx] = ballControlString[bx][bcPtr+2]
					state.ballControl[bx] = bcPtr + 3
				}

				state.ballX[bx] = int(int16(state.ballX[bx]) + state.ballXInc[bx])
				state.ballY[bx] = int(int16(state.ballY[bx]) + state.ballYInc[bx])

				drawBall(emu, ballOffset, state.currentPageOffset, state.ballX[bx], state.ballY[bx])
			}

			adjustPanning(&state.panning)

			addr := state.currentPageOffset + state.panning.panningStartOffset
			emu.SetCRTData(regs.CRTStartAddressLow, uint8(addr))
			emu.SetCRTData(regs.CRTStartAddressHigh, uint8(addr>>8))

			emu.SetAttributeReg(regs.AttributeHorizontalPixelPanning, uint8(state.panning.hpan))

			state.currentPage ^= 1
			if state.currentPage == 0 {
				state.currentPageOffset = page0Offset
			} else {
				state.currentPageOffset = page1Offset
			}

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
		log.Fatal("vga-ball: ", err)
	}
}

func drawBall(emu *vga.VGA, srcOffset, pageOffset, x, y int) {
	offset := pageOffset + y*logicalScreenWidth + x
	si := srcOffset
	di := offset
	for i := 0; i < ballHeight; i++ {
		dix := di
		for j := 0; j < ballWidth; j++ {
			emu.ReadMem(si)
			emu.WriteMem(dix, 0x00)
			si++
			dix++
		}
		di += logicalScreenWidth
	}
}

func drawBorder(emu *vga.VGA, offset int) {
	di := offset
	for i := 0; i < logicalScreenHeight/16; i++ {
		emu.SetSCData(regs.SCMapMask, 0x0c)
		drawBorderBlock(emu, di)
		di += logicalScreenWidth * 8
		emu.SetSCData(regs.SCMapMask, 0x0e)
		drawBorderBlock(emu, di)
		di += logicalScreenWidth * 8
	}

	di = offset + logicalScreenWidth - 1
	for i := 0; i < logicalScreenHeight/16; i++ {
		emu.SetSCData(regs.SCMapMask, 0x0e)
		drawBorderBlock(emu, di)
		di += logicalScreenWidth * 8
		emu.SetSCData(regs.SCMapMask, 0x0c)
		drawBorderBlock(emu, di)
		di += logicalScreenWidth * 8
	}

	di = offset
	for i := 0; i < (logicalScreenWidth-2)/2; i++ {
		di++
		emu.SetSCData(regs.SCMapMask, 0x0e)
		drawBorderBlock(emu, di)
		di++
		emu.SetSCData(regs.SCMapMask, 0x0c)
		drawBorderBlock(emu, di)
	}

	di = offset + (logicalScreenHeight-8)*logicalScreenWidth
	for i := 0; i < (logicalScreenWidth-2)/2; i++ {
		di++
		emu.SetSCData(regs.SCMapMask, 0x0e)
		drawBorderBlock(emu, di)
		di++
		emu.SetSCData(regs.SCMapMask, 0x0c)
		drawBorderBlock(emu, di)
	}
}

func drawBorderBlock(emu *vga.VGA, offset int) {
	di := offset
	for i := 0; i < 8; i++ {
		emu.WriteMem(di, 0xff)
		di += logicalScreenWidth
	}
}

func adjustPanning(state *panningState) {
	state.panningRep--
	if state.panningRep <= 0 {
		if panningControlString[state.panningControl] == 0 {
			state.panningControl = 0
		}
		state.panningRep = panningControlString[state.panningControl]
		state.panningXInc = panningControlString[state.panningControl+1]
		state.panningYInc = panningControlString[state.panningControl+2]
		state.panningControl += 3
	}

	if state.panningXInc < 0 {
		state.hpan--
		if state.hpan < 0 {
			state.hpan = 7
			state.panningStartOffset--
		}
	} else if state.panningXInc > 0 {
		state.hpan++
		if state.hpan >= 8 {
			state.hpan = 0
			state.panningStartOffset++
		}
	}

	if state.panningYInc < 0 {
		state.panningStartOffset -= logicalScreenWidth
	} else if state.panningYInc > 0 {
		state.panningStartOffset += logicalScreenWidth
	}
}
