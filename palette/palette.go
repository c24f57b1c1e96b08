// Package palette implements the 256-entry DAC color palette and its
// three-write data port, modeled as a tiny state machine per §4.3 and
// §9 ("model the DAC as a tiny state machine... rather than a bag of
// bytes"). Grounded on _examples/original_source/src/lib.rs's
// set_color_reg/get_color_reg/color_write_reads.
package palette

import (
	"fmt"
	"io"
	"sync"

	"github.com/Ragnaroek/vga-emu/regs"
)

// FileSize is the exact size of a palette file: 256 entries * 3 channels.
const FileSize = 256 * 3

// Table is the 256-entry packed-24-bit-RGB palette plus the DAC port's
// write and read channel counters. The address registers the port
// auto-advances stay in the register file's Color bank; the counters,
// the palette storage and its locking live here since the table is
// accessed every pixel by the linear rasterizer.
type Table struct {
	mu      sync.RWMutex
	entries [256]uint32

	// writeCounter/readCounter track how many of the three R/G/B writes
	// (or reads) have landed on ColorData since the last auto-advance.
	writeCounter int
	readCounter  int
}

// New returns a palette table preloaded with DefaultPalette.
func New() *Table {
	t := &Table{entries: DefaultPalette()}
	return t
}

// SetColorReg implements the DAC write port. Non-Data registers (the
// address pointers) write their byte straight into the register file;
// the regs.ColorData register drives this three-write state machine.
func (t *Table) SetColorReg(r *regs.File, reg regs.ColorReg, v uint8) {
	if reg != regs.ColorData {
		r.SetColorRaw(reg, v)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ix := int(r.GetColorRaw(regs.ColorAddressWriteMode))
	shift := uint((2 - t.writeCounter) * 8)

	t.entries[ix] &^= 0xFF << shift
	t.entries[ix] |= uint32(v&0x3F) << shift

	t.writeCounter++
	if t.writeCounter == 3 {
		next := r.GetColorRaw(regs.ColorAddressWriteMode) + 1
		r.SetColorRaw(regs.ColorAddressWriteMode, next)
		t.writeCounter = 0
	}
}

// GetColorReg implements the DAC read port, mirroring SetColorReg.
func (t *Table) GetColorReg(r *regs.File, reg regs.ColorReg) uint8 {
	if reg != regs.ColorData {
		return r.GetColorRaw(reg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ix := int(r.GetColorRaw(regs.ColorAddressReadMode))
	shift := uint((2 - t.readCounter) * 8)
	color := t.entries[ix]
	channel := uint8((color >> shift) & 0xFF)

	t.readCounter++
	if t.readCounter == 3 {
		next := r.GetColorRaw(regs.ColorAddressReadMode) + 1
		r.SetColorRaw(regs.ColorAddressReadMode, next)
		t.readCounter = 0
	}
	return channel
}

// Entry returns the packed 24-bit RGB value stored at palette index ix.
func (t *Table) Entry(ix int) uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[ix]
}

// LoadFile replaces the palette from a 768-byte file: 256 entries of
// (R, G, B), each channel a 6-bit DAC value. Any other length is a fatal
// configuration error, per §6/§7.
func (t *Table) LoadFile(r io.Reader) error {
	buf := make([]byte, FileSize+1)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("reading palette file: %w", err)
	}
	if n != FileSize {
		return fmt.Errorf("palette file must be exactly %d bytes, got %d", FileSize, n)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < 256; i++ {
		rCh := uint32(buf[i*3]) & 0x3F
		gCh := uint32(buf[i*3+1]) & 0x3F
		bCh := uint32(buf[i*3+2]) & 0x3F
		t.entries[i] = rCh<<16 | gCh<<8 | bCh
	}
	return nil
}
