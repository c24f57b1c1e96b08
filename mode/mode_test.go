package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/regs"
)

func TestInitMode10Defaults(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()

	err := Init(r, Mode16Color640x350)
	assert.NoError(err)

	assert.Equal(Mode16Color640x350, r.VideoMode())
	assert.Equal(640, r.Width())
	assert.Equal(350, r.Height())
	assert.Equal(uint8(0x04), r.GetSC(regs.SCMemoryMode))
	assert.Equal(uint8(40), r.GetCRT(regs.CRTOffset))
	assert.Equal(uint8(0xFF), r.GetGC(regs.GCBitMask))
}

func TestInitMode13Defaults(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()

	err := Init(r, ModeX320x200)
	assert.NoError(err)

	assert.Equal(ModeX320x200, r.VideoMode())
	assert.Equal(640, r.Width())
	assert.Equal(400, r.Height())
	assert.Equal(uint8(0x08), r.GetSC(regs.SCMemoryMode))
	assert.Equal(uint8(0x01), r.GetCRT(regs.CRTMaximumScanLine))
}

func TestInitRejectsUnsupportedMode(t *testing.T) {
	assert := assert.New(t)
	r := regs.New()

	err := Init(r, 0x03)
	assert.Error(err)
}
