package palette

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/regs"
)

func TestDACThreeWriteSequenceSetsOneEntry(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	tbl := New()

	tbl.SetColorReg(r, regs.ColorAddressWriteMode, 5)
	tbl.SetColorReg(r, regs.ColorData, 0x10) // R
	tbl.SetColorReg(r, regs.ColorData, 0x20) // G
	tbl.SetColorReg(r, regs.ColorData, 0x30) // B

	assert.Equal(uint32(0x10<<16|0x20<<8|0x30), tbl.Entry(5))
	// address auto-advances after the third write
	assert.Equal(uint8(6), r.GetColorRaw(regs.ColorAddressWriteMode))
}

func TestDACWriteMasksToSixBits(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	tbl := New()

	tbl.SetColorReg(r, regs.ColorAddressWriteMode, 0)
	tbl.SetColorReg(r, regs.ColorData, 0xFF)
	tbl.SetColorReg(r, regs.ColorData, 0xFF)
	tbl.SetColorReg(r, regs.ColorData, 0xFF)

	assert.Equal(uint32(0x3F3F3F), tbl.Entry(0))
}

func TestDACReadSequenceMirrorsWrite(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	tbl := New()

	tbl.SetColorReg(r, regs.ColorAddressWriteMode, 7)
	tbl.SetColorReg(r, regs.ColorData, 0x01)
	tbl.SetColorReg(r, regs.ColorData, 0x02)
	tbl.SetColorReg(r, regs.ColorData, 0x03)

	tbl.SetColorReg(r, regs.ColorAddressReadMode, 7)
	rCh := tbl.GetColorReg(r, regs.ColorData)
	gCh := tbl.GetColorReg(r, regs.ColorData)
	bCh := tbl.GetColorReg(r, regs.ColorData)

	assert.Equal(uint8(0x01), rCh)
	assert.Equal(uint8(0x02), gCh)
	assert.Equal(uint8(0x03), bCh)
	assert.Equal(uint8(8), r.GetColorRaw(regs.ColorAddressReadMode))
}

func TestNonDataColorRegsBypassTheDACStateMachine(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()
	tbl := New()

	tbl.SetColorReg(r, regs.ColorAddressWriteMode, 0x42)
	assert.Equal(uint8(0x42), tbl.GetColorReg(r, regs.ColorAddressWriteMode))
}

func TestLoadFileRejectsWrongLength(t *testing.T) {
	assert := assert.New(t)
	tbl := New()

	err := tbl.LoadFile(bytes.NewReader(make([]byte, FileSize-1)))
	assert.Error(err)

	err = tbl.LoadFile(bytes.NewReader(make([]byte, FileSize+1)))
	assert.Error(err)
}

func TestLoadFileAcceptsExactly768Bytes(t *testing.T) {
	assert := assert.New(t)
	tbl := New()

	buf := make([]byte, FileSize)
	buf[0], buf[1], buf[2] = 0x3F, 0x20, 0x10

	err := tbl.LoadFile(bytes.NewReader(buf))
	assert.NoError(err)
	assert.Equal(uint32(0x3F<<16|0x20<<8|0x10), tbl.Entry(0))
}

func TestNewIsPreloadedWithDefaultPalette(t *testing.T) {
	assert := assert.New(t)
	tbl := New()
	def := DefaultPalette()

	assert.Equal(def[0], tbl.Entry(0))
	assert.Equal(def[255], tbl.Entry(255))
}
