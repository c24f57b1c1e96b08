// Package regs implements the VGA register file: the Sequencer (SC),
// Graphics Controller (GC), CRT Controller (CRT), General, Attribute and
// Color/DAC banks, plus the four plane latches. Every register is a
// single byte, read and written atomically so concurrent callers never
// observe a torn value.
package regs

import (
	"fmt"
	"sync/atomic"
)

// Bank sizes, as specified by the hardware subset this emulator covers.
const (
	SCRegCount        = 5
	GCRegCount        = 9
	CRTRegCount       = 25
	LatchCount        = 4
	GeneralRegCount   = 4
	AttributeRegCount = 21
	ColorRegCount     = 4
)

// SCReg indexes the Sequencer Controller bank.
type SCReg uint8

const (
	SCReset              SCReg = 0x0
	SCClockingMode       SCReg = 0x1
	SCMapMask            SCReg = 0x2
	SCCharacterMapSelect SCReg = 0x3
	SCMemoryMode         SCReg = 0x4
)

// GCReg indexes the Graphics Controller bank.
type GCReg uint8

const (
	GCSetReset       GCReg = 0x0
	GCEnableSetReset GCReg = 0x1
	GCColorCompare   GCReg = 0x2
	GCDataRotate     GCReg = 0x3
	GCReadMapSelect  GCReg = 0x4
	GCGraphicsMode   GCReg = 0x5
	GCMiscGraphics   GCReg = 0x6
	GCColorDontCare  GCReg = 0x7
	GCBitMask        GCReg = 0x8
)

// CRTReg indexes the CRT Controller bank.
type CRTReg uint8

const (
	CRTHorizontalTotal          CRTReg = 0x00
	CRTHorizontalDisplayEnd     CRTReg = 0x01
	CRTStartHorizontalBlanking  CRTReg = 0x02
	CRTEndHorizontalBlanking    CRTReg = 0x03
	CRTStartHorizontalRetrace   CRTReg = 0x04
	CRTEndHorizontalRetrace     CRTReg = 0x05
	CRTVerticalTotal            CRTReg = 0x06
	CRTOverflow                 CRTReg = 0x07
	CRTPresetRowScan            CRTReg = 0x08
	CRTMaximumScanLine          CRTReg = 0x09
	CRTCursorStart              CRTReg = 0x0A
	CRTCursorEnd                CRTReg = 0x0B
	CRTStartAddressHigh         CRTReg = 0x0C
	CRTStartAddressLow          CRTReg = 0x0D
	CRTCursorLocationHigh       CRTReg = 0x0E
	CRTCursorLocationLow        CRTReg = 0x0F
	CRTVerticalRetraceStart     CRTReg = 0x10
	CRTVerticalRetraceEnd       CRTReg = 0x11
	CRTVerticalDisplayEnd       CRTReg = 0x12
	CRTOffset                   CRTReg = 0x13
	CRTUnderlineLocation        CRTReg = 0x14
	CRTStartVerticalBlanking    CRTReg = 0x15
	CRTEndVerticalBlanking      CRTReg = 0x16
	CRTCRTCModeControl          CRTReg = 0x17
	CRTLineCompare              CRTReg = 0x18
)

// GeneralReg indexes the General registers bank.
type GeneralReg uint8

const (
	GeneralMiscOutput     GeneralReg = 0x00
	GeneralFeatureControl GeneralReg = 0x01
	GeneralInputStatus0   GeneralReg = 0x02
	GeneralInputStatus1   GeneralReg = 0x03
)

// AttributeReg indexes the Attribute Controller bank.
type AttributeReg uint8

const (
	AttributePalette0               AttributeReg = 0x00
	AttributePalette1               AttributeReg = 0x01
	AttributePalette2               AttributeReg = 0x02
	AttributePalette3               AttributeReg = 0x03
	AttributePalette4               AttributeReg = 0x04
	AttributePalette5               AttributeReg = 0x05
	AttributePalette6               AttributeReg = 0x06
	AttributePalette7               AttributeReg = 0x07
	AttributePalette8               AttributeReg = 0x08
	AttributePalette9               AttributeReg = 0x09
	AttributePalette10              AttributeReg = 0x0A
	AttributePalette11              AttributeReg = 0x0B
	AttributePalette12              AttributeReg = 0x0C
	AttributePalette13              AttributeReg = 0x0D
	AttributePalette14              AttributeReg = 0x0E
	AttributePalette15              AttributeReg = 0x0F
	AttributeModeControl            AttributeReg = 0x10
	AttributeOverscanColor          AttributeReg = 0x11
	AttributeColorPlaneEnable       AttributeReg = 0x12
	AttributeHorizontalPixelPanning AttributeReg = 0x13
	AttributeColorPlaneEnableVGA    AttributeReg = 0x14
)

// ColorReg indexes the Color/DAC port.
type ColorReg uint8

const (
	ColorAddressWriteMode ColorReg = 0x00
	ColorAddressReadMode  ColorReg = 0x01
	ColorData             ColorReg = 0x02
	ColorState            ColorReg = 0x03
)

// File is the full VGA register file. Every register lives in its own
// atomic.Uint32 cell (a full byte fits comfortably, and atomic.Uint32
// gives us a lock-free, torn-value-free load/store pair) so readers and
// writers on different goroutines never race on a single register.
type File struct {
	videoMode atomic.Uint32

	sc        [SCRegCount]atomic.Uint32
	gc        [GCRegCount]atomic.Uint32
	crt       [CRTRegCount]atomic.Uint32
	latch     [LatchCount]atomic.Uint32
	general   [GeneralRegCount]atomic.Uint32
	attribute [AttributeRegCount]atomic.Uint32
	color     [ColorRegCount]atomic.Uint32
}

// New returns a register file with every register zeroed.
func New() *File {
	return &File{}
}

func (f *File) SetVideoMode(v uint8) { f.videoMode.Store(uint32(v)) }
func (f *File) VideoMode() uint8     { return uint8(f.videoMode.Load()) }

func (f *File) SetSC(reg SCReg, v uint8)  { f.sc[reg].Store(uint32(v)) }
func (f *File) GetSC(reg SCReg) uint8     { return uint8(f.sc[reg].Load()) }

func (f *File) SetGC(reg GCReg, v uint8) { f.gc[reg].Store(uint32(v)) }
func (f *File) GetGC(reg GCReg) uint8    { return uint8(f.gc[reg].Load()) }

func (f *File) SetCRT(reg CRTReg, v uint8) { f.crt[reg].Store(uint32(v)) }
func (f *File) GetCRT(reg CRTReg) uint8    { return uint8(f.crt[reg].Load()) }

func (f *File) SetLatch(plane int, v uint8) { f.latch[plane].Store(uint32(v)) }
func (f *File) GetLatch(plane int) uint8    { return uint8(f.latch[plane].Load()) }

func (f *File) SetGeneral(reg GeneralReg, v uint8) { f.general[reg].Store(uint32(v)) }
func (f *File) GetGeneral(reg GeneralReg) uint8    { return uint8(f.general[reg].Load()) }

func (f *File) SetAttribute(reg AttributeReg, v uint8) { f.attribute[reg].Store(uint32(v)) }
func (f *File) GetAttribute(reg AttributeReg) uint8    { return uint8(f.attribute[reg].Load()) }

// SetColorRaw/GetColorRaw store a color-port register byte directly,
// with no DAC side effects. palette.Table layers the three-write
// protocol on top of these for regs.ColorData.
func (f *File) SetColorRaw(reg ColorReg, v uint8) { f.color[reg].Store(uint32(v)) }
func (f *File) GetColorRaw(reg ColorReg) uint8    { return uint8(f.color[reg].Load()) }

// Width returns the current display width in pixels, derived from
// HorizontalDisplayEnd per §4.1.
func (f *File) Width() int {
	return (int(f.GetCRT(CRTHorizontalDisplayEnd)) + 1) * 8
}

// SetHorizontalDisplayEnd programs the width in pixels.
func (f *File) SetHorizontalDisplayEnd(width uint32) {
	f.SetCRT(CRTHorizontalDisplayEnd, uint8((width-1)/8))
}

// Height returns the current display height in pixels, reconstructing
// the two high bits (8 and 9) from the Overflow register per §4.1.
func (f *File) Height() int {
	lower := f.GetCRT(CRTVerticalDisplayEnd)
	overflow := f.GetCRT(CRTOverflow)
	bit8 := (overflow & 0x02) >> 1
	bit9 := (overflow & 0x40) >> 5
	upper := bit8 | bit9
	return (int(lower) | (int(upper) << 8)) + 1
}

// SetVerticalDisplayEnd programs the height in pixels, encoding bits 8
// and 9 into the Overflow register while preserving its other bits.
func (f *File) SetVerticalDisplayEnd(height uint32) {
	h := height - 1
	f.SetCRT(CRTVerticalDisplayEnd, uint8(h))

	bit8 := uint8((h & 0x100) >> 8)
	bit9 := uint8((h & 0x200) >> 9)

	overflow := f.GetCRT(CRTOverflow)
	overflow &^= 0x02 | 0x40
	overflow |= bit9<<6 | bit8<<1
	f.SetCRT(CRTOverflow, overflow)
}

// StartAddress reconstructs the CRTC start address from its high/low
// halves.
func (f *File) StartAddress() int {
	high := uint16(f.GetCRT(CRTStartAddressHigh))
	low := uint16(f.GetCRT(CRTStartAddressLow))
	return int(high<<8 | low)
}

// ErrUnsupportedVideoMode is returned (wrapped) when a caller asks for a
// video mode other than 0x10 or 0x13.
func ErrUnsupportedVideoMode(mode uint8) error {
	return fmt.Errorf("video mode %#02x not supported", mode)
}
