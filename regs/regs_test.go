package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewZeroed(t *testing.T) {
	r := New()
	assert := assert.New(t)
	assert.Equal(uint8(0), r.GetSC(SCReset))
	assert.Equal(uint8(0), r.GetGC(GCBitMask))
	assert.Equal(uint8(0), r.VideoMode())
}

func TestWidthHeightRoundTrip(t *testing.T) {
	type testCase struct {
		name   string
		width  uint32
		height uint32
	}

	testCases := []testCase{
		{"mode 0x10", 640, 350},
		{"mode 0x13", 640, 400},
		{"tall mode", 320, 480},
		{"max overflow bits", 672, 1024},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			assert := assert.New(t)

			r.SetHorizontalDisplayEnd(tc.width)
			r.SetVerticalDisplayEnd(tc.height)

			assert.Equal(int(tc.width), r.Width())
			assert.Equal(int(tc.height), r.Height())
		})
	}
}

func TestSetVerticalDisplayEndPreservesOtherOverflowBits(t *testing.T) {
	r := New()
	assert := assert.New(t)

	r.SetCRT(CRTOverflow, 0xFF)
	r.SetVerticalDisplayEnd(350)

	overflow := r.GetCRT(CRTOverflow)
	assert.Equal(uint8(0xFF&^(0x02|0x40)|(((350-1)&0x100)>>8)<<1|(((350-1)&0x200)>>9)<<6), overflow)
}

func TestStartAddress(t *testing.T) {
	r := New()
	assert := assert.New(t)

	r.SetCRT(CRTStartAddressHigh, 0x12)
	r.SetCRT(CRTStartAddressLow, 0x34)

	assert.Equal(0x1234, r.StartAddress())
}

func TestColorRaw(t *testing.T) {
	r := New()
	assert := assert.New(t)

	r.SetColorRaw(ColorAddressWriteMode, 0x42)
	assert.Equal(uint8(0x42), r.GetColorRaw(ColorAddressWriteMode))
}

func TestErrUnsupportedVideoMode(t *testing.T) {
	assert := assert.New(t)
	err := ErrUnsupportedVideoMode(0x99)
	assert.ErrorContains(err, "0x99")
}
