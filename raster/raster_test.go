package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/memory"
	"github.com/Ragnaroek/vga-emu/palette"
	"github.com/Ragnaroek/vga-emu/regs"
)

func TestRenderPlanarZeroOffsetIsAnError(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	mem := memory.New(r)
	buf := make(RGBSlice, 100)

	err := RenderPlanar(mem, r, 0, 8, buf, 24)
	assert.Error(err)
}

func TestRenderPlanarMapsAllOnesToWhite(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	r.SetCRT(regs.CRTOffset, 1)
	r.SetCRT(regs.CRTHorizontalDisplayEnd, 0) // 1 byte wide
	r.SetCRT(regs.CRTMaximumScanLine, 0)      // 1 scanline per row
	mem := memory.New(r)

	for plane := 0; plane < 4; plane++ {
		mem.RawWriteMem(plane, 0, 0xFF)
	}

	pitch := 8 * 3
	buf := make(RGBSlice, pitch*1)
	err := RenderPlanar(mem, r, 0, 1, buf, pitch)
	assert.NoError(err)

	assert.Equal(uint8(0xFE), buf[0])
	assert.Equal(uint8(0xFE), buf[1])
	assert.Equal(uint8(0xFE), buf[2])
}

func TestRenderLinearZeroOffsetIsAnError(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	mem := memory.New(r)
	pal := palette.New()
	buf := make(RGBSlice, 100)

	err := RenderLinear(mem, r, pal, 0, 8, 1, buf)
	assert.Error(err)
}

func TestRenderLinearScalesSixBitChannelsToEightBit(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	r.SetCRT(regs.CRTOffset, 1)
	r.SetCRT(regs.CRTHorizontalDisplayEnd, 0) // 1 byte wide
	r.SetCRT(regs.CRTMaximumScanLine, 0)
	mem := memory.New(r)
	pal := palette.New()

	mem.RawWriteMem(0, 0, 1) // palette index 1

	buf := make(RGBSlice, 4*3)
	err := RenderLinear(mem, r, pal, 0, 1, 1, buf)
	assert.NoError(err)

	entry := pal.Entry(1)
	wantR := uint8((entry & 0xFF0000) >> 14)
	wantG := uint8((entry & 0x00FF00) >> 6)
	wantB := uint8((entry & 0x0000FF) << 2)

	assert.Equal(wantR, buf[0])
	assert.Equal(wantG, buf[1])
	assert.Equal(wantB, buf[2])
}

func TestVStretch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, VStretch(0x13))
	assert.Equal(1, VStretch(0x10))
}
