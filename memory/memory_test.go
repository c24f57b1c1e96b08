package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/regs"
)

func newTestPlanes() (*Planes, *regs.File) {
	r := regs.New()
	return New(r), r
}

func TestWriteMemMapMaskWritesOnlySelectedPlanes(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()

	r.SetSC(regs.SCMemoryMode, 0x00) // chain-4 off, odd/even on (bit 2 clear); overridden below
	r.SetSC(regs.SCMemoryMode, 0x04) // disable chain-4 and odd/even: MapMask governs
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetGC(regs.GCBitMask, 0xFF)

	r.SetSC(regs.SCMapMask, 0x05) // planes 0 and 2
	p.WriteMem(100, 0xAB)

	assert.Equal(uint8(0xAB), p.RawReadMem(0, 100))
	assert.Equal(uint8(0x00), p.RawReadMem(1, 100))
	assert.Equal(uint8(0xAB), p.RawReadMem(2, 100))
	assert.Equal(uint8(0x00), p.RawReadMem(3, 100))
}

func TestReadMemReloadsAllLatchesEveryCall(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x04)
	r.SetGC(regs.GCReadMapSelect, 0x02)

	p.RawWriteMem(0, 5, 0x11)
	p.RawWriteMem(1, 5, 0x22)
	p.RawWriteMem(2, 5, 0x33)
	p.RawWriteMem(3, 5, 0x44)

	v := p.ReadMem(5)
	assert.Equal(uint8(0x33), v, "ReadMapSelect 2 selects plane 2's latch")
	assert.Equal(uint8(0x11), r.GetLatch(0))
	assert.Equal(uint8(0x22), r.GetLatch(1))
	assert.Equal(uint8(0x33), r.GetLatch(2))
	assert.Equal(uint8(0x44), r.GetLatch(3))
}

func TestChain4WritesAllFourPlanes(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x08) // chain-4 on
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetGC(regs.GCBitMask, 0xFF)
	r.SetSC(regs.SCMapMask, 0x01) // must be ignored: chain-4 dominates

	p.WriteMem(10, 0x7F)

	for plane := 0; plane < numPlanes; plane++ {
		assert.Equal(uint8(0x7F), p.RawReadMem(plane, 10))
	}
}

func TestChain4ReadSelectsPlaneByLowOffsetBits(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x08)

	p.RawWriteMem(0, 4, 0xAA)
	p.RawWriteMem(1, 4, 0xBB)
	p.RawWriteMem(2, 4, 0xCC)
	p.RawWriteMem(3, 4, 0xDD)

	assert.Equal(uint8(0xAA), p.ReadMem(4), "offset%4==0 selects plane 0")
}

func TestOddEvenWriteSelectsByOffsetParity(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x00) // chain-4 off, odd/even on
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetGC(regs.GCBitMask, 0xFF)

	p.WriteMem(10, 0x11) // even offset -> planes 0,2
	p.WriteMem(11, 0x22) // odd offset -> planes 1,3

	assert.Equal(uint8(0x11), p.RawReadMem(0, 10))
	assert.Equal(uint8(0x11), p.RawReadMem(2, 10))
	assert.Equal(uint8(0x00), p.RawReadMem(1, 10))

	assert.Equal(uint8(0x22), p.RawReadMem(1, 11))
	assert.Equal(uint8(0x22), p.RawReadMem(3, 11))
	assert.Equal(uint8(0x00), p.RawReadMem(0, 11))
}

func TestBitMaskPreservesLatchedBits(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x04)
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetSC(regs.SCMapMask, 0x01)

	p.RawWriteMem(0, 20, 0b1111_0000)
	r.SetLatch(0, 0b1111_0000)

	r.SetGC(regs.GCBitMask, 0b0000_1111)
	p.WriteMem(20, 0b1010_1010)

	assert.Equal(uint8(0b1111_1010), p.RawReadMem(0, 20), "high nibble preserved from latch, low nibble from CPU byte")
}

func TestWriteMode1PassesLatchThroughVerbatim(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x04)
	r.SetSC(regs.SCMapMask, 0x0F)
	r.SetGC(regs.GCGraphicsMode, 0x01) // write mode 1
	r.SetGC(regs.GCBitMask, 0x00)      // ignored in mode 1

	p.RawWriteMem(0, 30, 0x01)
	p.RawWriteMem(1, 30, 0x02)
	p.RawWriteMem(2, 30, 0x03)
	p.RawWriteMem(3, 30, 0x04)
	p.ReadMem(30) // reload latches from plane memory

	p.WriteMem(99, 0xFF) // CPU byte ignored entirely in mode 1

	assert.Equal(uint8(0x01), p.RawReadMem(0, 99))
	assert.Equal(uint8(0x02), p.RawReadMem(1, 99))
	assert.Equal(uint8(0x03), p.RawReadMem(2, 99))
	assert.Equal(uint8(0x04), p.RawReadMem(3, 99))
}

func TestWriteMemChunkWritesConsecutiveOffsets(t *testing.T) {
	assert := assert.New(t)
	p, r := newTestPlanes()
	r.SetSC(regs.SCMemoryMode, 0x04)
	r.SetGC(regs.GCGraphicsMode, 0x00)
	r.SetGC(regs.GCBitMask, 0xFF)
	r.SetSC(regs.SCMapMask, 0x01)

	p.WriteMemChunk(0, []uint8{0x11, 0x22, 0x33})

	assert.Equal(uint8(0x11), p.RawReadMem(0, 0))
	assert.Equal(uint8(0x22), p.RawReadMem(0, 1))
	assert.Equal(uint8(0x33), p.RawReadMem(0, 2))
}
