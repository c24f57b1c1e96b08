// Package memory implements VGA plane memory and the memory engine that
// sits on top of it: write_mem/read_mem with write-mode, plane-mask,
// chain-4 and odd/even semantics, plus the raw_* plane accessors used by
// the rasterizer and by tests.
//
// Grounded on c64/memory.Manager's single struct owning backing byte
// arrays with Read/Write/DMA helpers, generalized from one bank-switched
// array to four parallel planes per the original vga-emu's write_mem/
// read_mem.
package memory

import (
	"sync"

	"github.com/Ragnaroek/vga-emu/regs"
)

// PlaneSize is the size in bytes of a single VGA plane (64 KiB).
const PlaneSize = 0xFFFF

const numPlanes = 4

// Planes is the four-plane 64 KiB VGA display memory, serialized behind
// a single lock so write-mode-1 stays atomic with respect to the latch
// set (splitting the lock per plane would let one plane update while a
// concurrent read_mem is mid-way through reloading the others).
type Planes struct {
	mu   sync.Mutex
	mem  [numPlanes][]byte
	regs *regs.File
}

// New allocates zeroed plane memory bound to the given register file.
func New(r *regs.File) *Planes {
	p := &Planes{regs: r}
	for i := range p.mem {
		p.mem[i] = make([]byte, PlaneSize)
	}
	return p
}

// WriteMem implements §4.2's write algorithm: it consults the Sequencer
// MemoryMode, Graphics Controller write mode and bit mask, and the
// current MapMask to decide which planes to touch and how.
func (p *Planes) WriteMem(offset int, vIn uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dest := p.destPlaneMaskLocked(offset)

	mode := p.regs.GetGC(regs.GCGraphicsMode) & 0x03
	bitMask := p.regs.GetGC(regs.GCBitMask)

	for plane := 0; plane < numPlanes; plane++ {
		if dest&(1<<uint(plane)) == 0 {
			continue
		}
		latch := p.regs.GetLatch(plane)
		var v uint8
		if mode == 0x01 {
			// Write mode 1: latches pass through verbatim, CPU byte ignored.
			v = latch
		} else {
			// Write modes 0, 2 and 3 (2/3 are not required by any caller
			// in this spec and are folded into mode 0, per §4.2).
			v = (vIn & bitMask) | (latch &^ bitMask)
		}
		p.mem[plane][offset] = v
	}
}

// destPlaneMaskLocked computes the destination plane bitmask D per
// §4.2's step 2. Caller must hold p.mu.
func (p *Planes) destPlaneMaskLocked(offset int) uint8 {
	memMode := p.regs.GetSC(regs.SCMemoryMode)
	switch {
	case memMode&0x08 != 0: // chain-4 dominates odd/even, fixed by §9.
		return 0x0F
	case memMode&0x04 == 0: // odd/even
		if offset%2 == 0 {
			return 0x05
		}
		return 0x0A
	default:
		return p.regs.GetSC(regs.SCMapMask)
	}
}

// WriteMemChunk writes consecutive bytes via WriteMem, re-evaluating
// register state on every byte (some callers change MapMask mid-chunk).
func (p *Planes) WriteMemChunk(base int, v []uint8) {
	for i, b := range v {
		p.WriteMem(base+i, b)
	}
}

// ReadMem implements §4.2's read algorithm: every call reloads all four
// latches from plane memory (a side effect callers must not optimize
// away), then returns the latch selected by chain-4 or ReadMapSelect.
func (p *Planes) ReadMem(offset int) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()

	memMode := p.regs.GetSC(regs.SCMemoryMode)
	var selected int
	if memMode&0x08 != 0 {
		selected = offset & 0x03
	} else {
		selected = int(p.regs.GetGC(regs.GCReadMapSelect) & 0x03)
	}

	for plane := 0; plane < numPlanes; plane++ {
		p.regs.SetLatch(plane, p.mem[plane][offset])
	}
	return p.regs.GetLatch(selected)
}

// RawReadMem bypasses all register logic and reads exactly one plane
// byte. Used by the rasterizer and by tests.
func (p *Planes) RawReadMem(plane int, offset int) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mem[plane][offset]
}

// RawWriteMem bypasses all register logic and writes exactly one plane
// byte.
func (p *Planes) RawWriteMem(plane int, offset int, v uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mem[plane][offset] = v
}
