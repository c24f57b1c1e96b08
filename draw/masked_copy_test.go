package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// CopySystemToScreenMaskedX reproduces a known offset quirk from its
// source material rather than correcting it (see the doc comment on
// CopySystemToScreenMaskedX): the destination byte/plane walk is driven
// entirely by di's starting value, with no per-row reset tied to
// dst_start_x. This test pins the resulting placement for a 2x2 sprite
// so a future attempt to "fix" the function is a visible, deliberate
// change rather than an accidental regression.
func TestCopySystemToScreenMaskedXPinsObservedPlacement(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	source := []uint8{1, 2, 3, 4}
	mask := []uint8{1, 1, 1, 1}

	CopySystemToScreenMaskedX(e, r, 0, 0, 2, 2, 0, 0, source, 0, 2, 4, mask)

	// di advances by dst_page_width (4>>2=1) after row 0, but ix is
	// recomputed as di &^ 0b11 which truncates di=1 back to byte 0: row
	// 1 lands on the same destination byte as row 0 instead of the next
	// one, and only its plane offset (carried over from di's low bits)
	// differs. Byte 1 is never touched.
	assert.Equal(uint8(1), e.RawReadMem(0, 0), "row 0 plane 0")
	assert.Equal(uint8(3), e.RawReadMem(1, 0), "row 1 plane 1 overwrites row 0's plane 1 write")
	assert.Equal(uint8(4), e.RawReadMem(2, 0), "row 1 plane 2")
	assert.Equal(uint8(0), e.RawReadMem(0, 1), "byte 1 is never reached")
	assert.Equal(uint8(0), e.RawReadMem(1, 1))
}

func TestCopySystemToScreenMaskedXSkipsZeroMaskPixels(t *testing.T) {
	assert := assert.New(t)
	e, r := newTestEngine()

	source := []uint8{9, 9}
	mask := []uint8{0, 1}

	CopySystemToScreenMaskedX(e, r, 0, 0, 2, 1, 0, 0, source, 0, 2, 4, mask)

	assert.Equal(uint8(0), e.RawReadMem(0, 0), "masked-out pixel must not be written")
	assert.Equal(uint8(9), e.RawReadMem(1, 0))
}
