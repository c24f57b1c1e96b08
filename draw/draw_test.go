package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/memory"
	"github.com/Ragnaroek/vga-emu/regs"
)

func newTestEngine() (*memory.Planes, *regs.File) {
	r := regs.New()
	r.SetSC(regs.SCMemoryMode, 0x04) // chain-4 off, MapMask governs
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetGC(regs.GCBitMask, 0xFF)
	return memory.New(r), r
}

func TestFillRectangleXFillsFullBytesAndClipsEdges(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	// 8 pixels wide (2 bytes across 4 planes), 1 row tall, starting
	// mid-byte at x=2 so the left clip mask must exclude planes 0-1.
	FillRectangleX(e, r, 2, 0, 10, 1, 0, 0x05)

	// byte 0 covers pixels 0-3: only planes 2,3 (x=2,3) should be set.
	assert.Equal(uint8(0x00), e.RawReadMem(0, 0))
	assert.Equal(uint8(0x00), e.RawReadMem(1, 0))
	assert.Equal(uint8(0x05), e.RawReadMem(2, 0))
	assert.Equal(uint8(0x05), e.RawReadMem(3, 0))

	// byte 1 covers pixels 4-7: fully inside [2,10), all planes set.
	assert.Equal(uint8(0x05), e.RawReadMem(0, 1))
	assert.Equal(uint8(0x05), e.RawReadMem(1, 1))
	assert.Equal(uint8(0x05), e.RawReadMem(2, 1))
	assert.Equal(uint8(0x05), e.RawReadMem(3, 1))

	// byte 2 covers pixels 8-11: only planes 0,1 (x=8,9) inside [2,10).
	assert.Equal(uint8(0x05), e.RawReadMem(0, 2))
	assert.Equal(uint8(0x05), e.RawReadMem(1, 2))
	assert.Equal(uint8(0x00), e.RawReadMem(2, 2))
	assert.Equal(uint8(0x00), e.RawReadMem(3, 2))
}

func TestFillRectangleXSingleByteWidthCombinesClipMasks(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	// Pixels 1..3 of byte 0 only (planes 1,2).
	FillRectangleX(e, r, 1, 0, 3, 1, 0, 0x09)

	assert.Equal(uint8(0x00), e.RawReadMem(0, 0))
	assert.Equal(uint8(0x09), e.RawReadMem(1, 0))
	assert.Equal(uint8(0x09), e.RawReadMem(2, 0))
	assert.Equal(uint8(0x00), e.RawReadMem(3, 0))
}

func TestFillRectangleXEmptyRectangleIsNoop(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	FillRectangleX(e, r, 5, 5, 5, 10, 0, 0xFF)
	assert.Equal(uint8(0x00), e.RawReadMem(0, 0))
}

func TestFillPatternXTilesFourRowPattern(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	var pattern [16]byte
	for i := range pattern {
		pattern[i] = uint8(i + 1)
	}

	FillPatternX(e, r, 0, 0, 4, 4, 0, pattern)

	// Row y of the target takes pattern row y: plane p holds pattern[y*4+p].
	for y := 0; y < 4; y++ {
		for p := 0; p < 4; p++ {
			assert.Equal(pattern[y*4+p], e.RawReadMem(p, y*80))
		}
	}

	// GC bit mask is restored to 0xFF after the fill.
	assert.Equal(uint8(0xFF), r.GetGC(regs.GCBitMask))
}

func TestCopyScreenToScreenXCopiesViaLatches(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	e.RawWriteMem(0, 0, 0xAA)
	e.RawWriteMem(1, 0, 0xBB)
	e.RawWriteMem(2, 0, 0xCC)
	e.RawWriteMem(3, 0, 0xDD)

	CopyScreenToScreenX(e, r, 0, 0, 4, 1, 0, 0, 0, 100, 4, 4)

	assert.Equal(uint8(0xAA), e.RawReadMem(0, 100))
	assert.Equal(uint8(0xBB), e.RawReadMem(1, 100))
	assert.Equal(uint8(0xCC), e.RawReadMem(2, 100))
	assert.Equal(uint8(0xDD), e.RawReadMem(3, 100))
}
