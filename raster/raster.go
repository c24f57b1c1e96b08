// Package raster implements the two VGA frame rasterizers: the planar
// 16-color path (modes with separate bit planes) and the linear
// chain-4 256-color path (Mode X). Both walk display memory respecting
// Offset, MaximumScanLine and HorizontalDisplayEnd; only the planar path
// applies horizontal pixel panning, per §4.5.
//
// Grounded on _examples/original_source/src/backend.rs's render_planar/
// render_linear.
package raster

import (
	"fmt"

	"github.com/Ragnaroek/vga-emu/palette"
	"github.com/Ragnaroek/vga-emu/regs"
)

// PlaneReader is the subset of memory.Planes the rasterizer needs: raw,
// register-free access to a single plane byte.
type PlaneReader interface {
	RawReadMem(plane int, offset int) uint8
}

// PixelBuffer is a tightly or loosely packed RGB24 destination buffer,
// matching §6's pixel buffer contract (row-major, pitch may exceed
// width*3).
type PixelBuffer interface {
	SetRGB(offset int, r, g, b uint8)
}

// RGBSlice adapts a flat []byte to PixelBuffer assuming 3 bytes/pixel.
type RGBSlice []byte

func (s RGBSlice) SetRGB(offset int, r, g, b uint8) {
	s[offset] = r
	s[offset+1] = g
	s[offset+2] = b
}

// maxScanLines returns the number of scanlines per text row.
func maxScanLines(r *regs.File) int {
	return int(r.GetCRT(regs.CRTMaximumScanLine)&0x1F) + 1
}

// RenderPlanar draws one frame for the planar 16-color modes (anything
// other than 0x13) into buffer, using pitch bytes per output row.
func RenderPlanar(mem PlaneReader, r *regs.File, memOffset int, height int, buffer PixelBuffer, pitch int) error {
	offsetDelta := int(r.GetCRT(regs.CRTOffset))
	if offsetDelta == 0 {
		return fmt.Errorf("raster: CRT offset register is zero, cannot render")
	}

	maxScan := maxScanLines(r)
	wBytes := int(r.GetCRT(regs.CRTHorizontalDisplayEnd)) + 2 // +1 exclusive, +1 for hpan overshoot

	x, y := 0, 0
	offset := memOffset
	for row := 0; row < height/maxScan; row++ {
		for scan := 0; scan < maxScan; scan++ {
			hpan := r.GetAttribute(regs.AttributeHorizontalPixelPanning) & 0x0F
			for memByte := 0; memByte < wBytes; memByte++ {
				v0 := mem.RawReadMem(0, offset+memByte)
				v1 := mem.RawReadMem(1, offset+memByte)
				v2 := mem.RawReadMem(2, offset+memByte)
				v3 := mem.RawReadMem(3, offset+memByte)

				start := uint8(0)
				if memByte == 0 {
					start = hpan
				}
				end := uint8(8)
				if memByte == wBytes-1 {
					end = hpan
				}

				for b := start; b < end; b++ {
					bx := uint8(1) << (7 - b)
					pixel := bitX(v0, bx, 0) | bitX(v1, bx, 1) | bitX(v2, bx, 2) | bitX(v3, bx, 3)
					c := ega16[pixel]
					buffer.SetRGB(y*pitch+x*3, c.r, c.g, c.b)
					x++
				}
			}
			x = 0
			y++
		}
		offset += offsetDelta * 2
	}
	return nil
}

// RenderLinear draws one frame for Mode X (chain-4 256-color) into
// buffer. Each source pixel is repeated vStretch times horizontally, a
// pragmatic approximation documented rather than derived from registers
// (§9).
func RenderLinear(mem PlaneReader, r *regs.File, pal *palette.Table, memOffset int, height int, vStretch int, buffer PixelBuffer) error {
	offsetDelta := int(r.GetCRT(regs.CRTOffset))
	if offsetDelta == 0 {
		return fmt.Errorf("raster: CRT offset register is zero, cannot render")
	}

	maxScan := maxScanLines(r)
	wBytes := int(r.GetCRT(regs.CRTHorizontalDisplayEnd)) + 1

	offset := memOffset
	bufferOffset := 0
	for row := 0; row < height/maxScan; row++ {
		for scan := 0; scan < maxScan; scan++ {
			for xByte := 0; xByte < wBytes; xByte++ {
				for p := 0; p < 4; p++ {
					v := mem.RawReadMem(p, offset+xByte)
					color := pal.Entry(int(v))
					r8 := uint8((color & 0xFF0000) >> 14)
					g8 := uint8((color & 0x00FF00) >> 6)
					b8 := uint8((color & 0x0000FF) << 2)
					for s := 0; s < vStretch; s++ {
						buffer.SetRGB(bufferOffset, r8, g8, b8)
						bufferOffset += 3
					}
				}
			}
		}
		offset += offsetDelta * 2
	}
	return nil
}

func bitX(v, vIx uint8, dstIx uint) uint8 {
	if v&vIx != 0 {
		return 1 << dstIx
	}
	return 0
}

// VStretch returns the pragmatic vertical/horizontal stretch factor for
// the given video mode (§9 Open Question decision).
func VStretch(videoMode uint8) int {
	if videoMode == 0x13 {
		return 2
	}
	return 1
}
