// Package draw implements the Mode X drawing helpers built on top of
// the memory engine: rectangle fill, pattern fill, screen-to-screen
// copy and masked system-to-screen copy. All four assume the classic
// 80-byte-wide (320 pixel / 4 plane) Mode X page layout and the
// Abrash left/right clip-mask technique.
//
// Grounded line-for-line on _examples/original_source/src/util.rs
// (fill_rectangle_x, fill_pattern_x, copy_screen_to_screen_x,
// copy_system_to_screen_masked_x).
package draw

import "github.com/Ragnaroek/vga-emu/regs"

const (
	screenWidth    = 80
	patternBuffer  = 0xFFFC
	planeSizeLimit = 0xFFFF
)

var leftClipPlaneMask = [4]uint8{0x0F, 0x0E, 0x0C, 0x08}
var rightClipPlaneMask = [4]uint8{0x0F, 0x01, 0x03, 0x07}

// Engine is the subset of the memory engine the drawing helpers need.
// memory.Planes satisfies it.
type Engine interface {
	WriteMem(offset int, v uint8)
	ReadMem(offset int) uint8
}

// FillRectangleX fills [startX, endX) x [startY, endY) on the given Mode
// X page with a flat color, per §4.4.
func FillRectangleX(e Engine, r *regs.File, startX, startY, endX, endY, pageBase int, color uint8) {
	if endX <= startX || endY <= startY {
		return
	}

	leftClip := leftClipPlaneMask[startX&0x03]
	rightClip := rightClipPlaneMask[endX&0x03]

	di := startY*screenWidth + (startX >> 2) + pageBase

	height := endY - startY
	width := ((endX - 1) - (startX &^ 0x03)) >> 2

	if width == 0 {
		leftClip &= rightClip
	}

	for i := 0; i < height; i++ {
		r.SetSC(regs.SCMapMask, leftClip)
		e.WriteMem(di, color)

		if width > 0 {
			r.SetSC(regs.SCMapMask, 0x0F)
			for w := 0; w < width-1; w++ {
				e.WriteMem(di+w+1, color)
			}

			r.SetSC(regs.SCMapMask, rightClip)
			e.WriteMem(di+width, color)
		}

		di += screenWidth
	}
}

// FillPatternX tiles a 4x4 pattern (one byte per plane per row, 16
// bytes total) across the given rectangle, per §4.4. The pattern is
// preloaded into an off-screen buffer at 0xFFFB..0xFFFE and replayed
// through ReadMem/WriteMem with the GC bit mask at 0, so every written
// byte takes the latched pattern row. The write mode is not changed.
func FillPatternX(e Engine, r *regs.File, startX, startY, endX, endY, pageBase int, pattern [16]byte) {
	if endX <= startX || endY <= startY {
		return
	}

	for i := 0; i < 4; i++ {
		r.SetSC(regs.SCMapMask, 1)
		e.WriteMem(patternBuffer-1+i, pattern[i*4])

		r.SetSC(regs.SCMapMask, 2)
		e.WriteMem(patternBuffer-1+i, pattern[i*4+1])

		r.SetSC(regs.SCMapMask, 4)
		e.WriteMem(patternBuffer-1+i, pattern[i*4+2])

		r.SetSC(regs.SCMapMask, 8)
		e.WriteMem(patternBuffer-1+i, pattern[i*4+3])
	}
	r.SetGC(regs.GCBitMask, 0)

	si := (startY & 0x03) + (patternBuffer - 1)
	di := startY*screenWidth + (startX >> 2) + pageBase

	leftClip := leftClipPlaneMask[startX&0x03]
	rightClip := rightClipPlaneMask[endX&0x03]

	height := endY - startY
	width := ((endX - 1) - (startX &^ 0x03)) >> 2

	if width == 0 {
		leftClip &= rightClip
	}

	for i := 0; i < height; i++ {
		e.ReadMem(si) // latch the pattern row
		si++
		if si >= planeSizeLimit {
			si -= 4
		}

		r.SetSC(regs.SCMapMask, leftClip)
		e.WriteMem(di, 0x00)

		if width > 0 {
			r.SetSC(regs.SCMapMask, 0x0F)
			for w := 0; w < width-1; w++ {
				e.WriteMem(di+w+1, 0x00)
			}

			r.SetSC(regs.SCMapMask, rightClip)
			e.WriteMem(di+width, 0x00)
		}

		di += screenWidth
	}

	r.SetGC(regs.GCBitMask, 0xFF)
}

// CopyScreenToScreenX copies a rectangle between two bitmaps of
// (possibly different) widths via the latches, per §4.4: it sets the GC
// bit mask to 0 (and leaves it there), so each written byte takes the
// latched source bytes. The write mode is not changed.
func CopyScreenToScreenX(e Engine, r *regs.File, srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY, srcPageBase, dstPageBase, srcBitmapWidth, dstBitmapWidth int) {
	r.SetGC(regs.GCBitMask, 0)

	dstPageWidth := dstBitmapWidth >> 2
	di := dstPageWidth*dstStartY + (dstStartX >> 2) + dstPageBase

	srcPageWidth := srcBitmapWidth >> 2
	si := srcPageWidth*srcStartY + (srcStartX >> 2) + srcPageBase

	leftClip := leftClipPlaneMask[srcStartX&0x03]
	rightClip := rightClipPlaneMask[srcEndX&0x03]

	widthBytes := srcEndX - srcStartX
	srcHeight := srcEndY - srcStartY

	srcNextOffset := srcPageWidth - widthBytes
	dstNextOffset := dstPageWidth - widthBytes

	for i := 0; i < srcHeight; i++ {
		r.SetSC(regs.SCMapMask, leftClip)
		e.ReadMem(si)
		e.WriteMem(di, 0x00)
		si++
		di++

		r.SetSC(regs.SCMapMask, 0x0F)
		for w := 0; w < widthBytes-1; w++ {
			e.ReadMem(si)
			e.WriteMem(di, 0x00)
			si++
			di++
		}

		r.SetSC(regs.SCMapMask, rightClip)
		e.ReadMem(si)
		e.WriteMem(di+widthBytes, 0x00)
		si++
		di++

		si += srcNextOffset
		di += dstNextOffset
	}
}

// CopySystemToScreenMaskedX copies a host-memory bitmap into Mode X
// plane memory one pixel at a time, skipping pixels whose mask byte is
// zero, per §4.4.
//
// This reproduces the source's acknowledged pixel-offset bug (§9 Open
// Question) verbatim: it does not correct for it. See
// draw/masked_copy_test.go for a test that pins the observed behavior.
func CopySystemToScreenMaskedX(e Engine, r *regs.File, srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY int, source []byte, dstPageBase, srcBitmapWidth, dstBitmapWidth int, mask []byte) {
	dstPageWidth := dstBitmapWidth >> 2
	di := dstPageWidth*dstStartY + (dstStartX >> 2) + dstPageBase

	si := srcBitmapWidth*srcStartY + srcStartX

	widthBytes := srcEndX - srcStartX
	srcHeight := srcEndY - srcStartY

	for y := 0; y < srcHeight; y++ {
		ix := di &^ 0b11
		plane := di & 0b11
		for x := 0; x < widthBytes; x++ {
			if mask[si] != 0 {
				r.SetSC(regs.SCMapMask, 1<<uint(plane))
				e.WriteMem(ix, source[si])
			}
			if plane == 3 {
				ix++
				plane = 0
			} else {
				plane++
			}
			si++
		}
		di += dstPageWidth
	}
}
