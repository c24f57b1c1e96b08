// Package vga assembles the register file, plane memory, palette,
// input monitoring and an external backend into one emulator, and
// drives it frame by frame per §4.6. Grounded on
// _examples/original_source/src/lib.rs's VGA/Options/start (here split
// into a VGABuilder fluent API and a DrawFrame method, matching
// _examples/original_source/examples/palette/src/lib.rs and
// _examples/original_source/examples/ball/src/lib.rs's
// VGABuilder::new()....build() usage) and
// _examples/newhook-6502/c64emu/main.go's do()-error top-level loop
// style.
package vga

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Ragnaroek/vga-emu/backend"
	"github.com/Ragnaroek/vga-emu/draw"
	"github.com/Ragnaroek/vga-emu/input"
	"github.com/Ragnaroek/vga-emu/memory"
	"github.com/Ragnaroek/vga-emu/mode"
	"github.com/Ragnaroek/vga-emu/palette"
	"github.com/Ragnaroek/vga-emu/raster"
	"github.com/Ragnaroek/vga-emu/regs"
)

// TargetFrameRateMicro is the frame pacing target for a 70 Hz display.
const TargetFrameRateMicro = 1_000_000 / 70

// VerticalResetMicro is how long DrawFrame holds the vertical-retrace
// bit high when SimulateVerticalReset is enabled.
const VerticalResetMicro = 635 * time.Microsecond

const (
	clearVRMask uint8 = 0b1111_0111
	clearDEMask uint8 = 0b1111_1110
)

// VGA is the assembled emulator: register file, plane memory, palette
// and input state, driven against a pluggable backend.Backend.
type VGA struct {
	Regs    *regs.File
	Mem     *memory.Planes
	Palette *palette.Table
	Input   *input.Monitoring

	backend backend.Backend

	startAddrOverride *int
	simulateVR        bool
	showFrameRate     bool

	frameCount atomic.Uint64
}

// VGABuilder is the fluent construction API mirroring the original's
// VGABuilder::new()....build() demo usage.
type VGABuilder struct {
	videoMode         uint8
	title             string
	fullscreen        bool
	simulateVR        bool
	showFrameRate     bool
	startAddrOverride *int
	backend           backend.Backend
}

// NewBuilder returns a builder defaulted to mode 0x13 (Mode X,
// 256-color chain-4), windowed, no vertical-reset simulation.
func NewBuilder() *VGABuilder {
	return &VGABuilder{
		videoMode: mode.ModeX320x200,
		title:     "vga-emu",
	}
}

func (b *VGABuilder) VideoMode(m uint8) *VGABuilder       { b.videoMode = m; return b }
func (b *VGABuilder) Title(title string) *VGABuilder      { b.title = title; return b }
func (b *VGABuilder) Fullscreen(fullscreen bool) *VGABuilder { b.fullscreen = fullscreen; return b }
func (b *VGABuilder) SimulateVerticalReset() *VGABuilder  { b.simulateVR = true; return b }
func (b *VGABuilder) ShowFrameRate() *VGABuilder          { b.showFrameRate = true; return b }
func (b *VGABuilder) StartAddrOverride(addr int) *VGABuilder {
	b.startAddrOverride = &addr
	return b
}
func (b *VGABuilder) Backend(be backend.Backend) *VGABuilder { b.backend = be; return b }

// Build constructs the VGA, applies the chosen video mode's register
// defaults, and initializes the backend window at the mode's pixel
// dimensions.
func (b *VGABuilder) Build() (*VGA, error) {
	if b.backend == nil {
		return nil, fmt.Errorf("vga: no backend configured")
	}

	r := regs.New()
	if err := mode.Init(r, b.videoMode); err != nil {
		return nil, fmt.Errorf("vga: %w", err)
	}

	v := &VGA{
		Regs:              r,
		Mem:               memory.New(r),
		Palette:           palette.New(),
		Input:             input.New(),
		backend:           b.backend,
		startAddrOverride: b.startAddrOverride,
		simulateVR:        b.simulateVR,
		showFrameRate:     b.showFrameRate,
	}

	width := r.Width()
	height := r.Height()
	if err := b.backend.Init(b.title, width, height, b.fullscreen); err != nil {
		return nil, fmt.Errorf("vga: backend init: %w", err)
	}
	return v, nil
}

// SetSCData / GetSCData / ... are typed passthroughs to the register
// file, matching the original's set_sc_data/get_sc_data accessor
// family naming.
func (v *VGA) SetSCData(reg regs.SCReg, val uint8) { v.Regs.SetSC(reg, val) }
func (v *VGA) GetSCData(reg regs.SCReg) uint8      { return v.Regs.GetSC(reg) }

func (v *VGA) SetGCData(reg regs.GCReg, val uint8) { v.Regs.SetGC(reg, val) }
func (v *VGA) GetGCData(reg regs.GCReg) uint8      { return v.Regs.GetGC(reg) }

func (v *VGA) SetCRTData(reg regs.CRTReg, val uint8) { v.Regs.SetCRT(reg, val) }
func (v *VGA) GetCRTData(reg regs.CRTReg) uint8      { return v.Regs.GetCRT(reg) }

func (v *VGA) SetGeneralReg(reg regs.GeneralReg, val uint8) { v.Regs.SetGeneral(reg, val) }
func (v *VGA) GetGeneralReg(reg regs.GeneralReg) uint8      { return v.Regs.GetGeneral(reg) }

func (v *VGA) SetAttributeReg(reg regs.AttributeReg, val uint8) { v.Regs.SetAttribute(reg, val) }
func (v *VGA) GetAttributeReg(reg regs.AttributeReg) uint8      { return v.Regs.GetAttribute(reg) }

func (v *VGA) SetColorReg(reg regs.ColorReg, val uint8) { v.Palette.SetColorReg(v.Regs, reg, val) }
func (v *VGA) GetColorReg(reg regs.ColorReg) uint8      { return v.Palette.GetColorReg(v.Regs, reg) }

func (v *VGA) GetColorPalette256(ix int) uint32 { return v.Palette.Entry(ix) }

func (v *VGA) WriteMem(offset int, val uint8) { v.Mem.WriteMem(offset, val) }
func (v *VGA) ReadMem(offset int) uint8       { return v.Mem.ReadMem(offset) }
func (v *VGA) WriteMemChunk(offset int, v2 []uint8) { v.Mem.WriteMemChunk(offset, v2) }

func (v *VGA) RawReadMem(plane, offset int) uint8     { return v.Mem.RawReadMem(plane, offset) }
func (v *VGA) RawWriteMem(plane, offset int, val uint8) { v.Mem.RawWriteMem(plane, offset, val) }

func (v *VGA) GetVideoMode() uint8 { return v.Regs.VideoMode() }

// FrameCount returns how many frames DrawFrame has completed.
func (v *VGA) FrameCount() uint64 { return v.frameCount.Load() }

// FillRectangleX, FillPatternX, CopyScreenToScreenX and
// CopySystemToScreenMaskedX expose the draw package's Mode X helpers
// bound to this VGA's memory and registers.
func (v *VGA) FillRectangleX(startX, startY, endX, endY, pageBase int, color uint8) {
	draw.FillRectangleX(v.Mem, v.Regs, startX, startY, endX, endY, pageBase, color)
}

func (v *VGA) FillPatternX(startX, startY, endX, endY, pageBase int, pattern [16]byte) {
	draw.FillPatternX(v.Mem, v.Regs, startX, startY, endX, endY, pageBase, pattern)
}

func (v *VGA) CopyScreenToScreenX(srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY, srcPageBase, dstPageBase, srcBitmapWidth, dstBitmapWidth int) {
	draw.CopyScreenToScreenX(v.Mem, v.Regs, srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY, srcPageBase, dstPageBase, srcBitmapWidth, dstBitmapWidth)
}

func (v *VGA) CopySystemToScreenMaskedX(srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY int, source []byte, dstPageBase, srcBitmapWidth, dstBitmapWidth int, maskBuf []byte) {
	draw.CopySystemToScreenMaskedX(v.Mem, v.Regs, srcStartX, srcStartY, srcEndX, srcEndY, dstStartX, dstStartY, source, dstPageBase, srcBitmapWidth, dstBitmapWidth, maskBuf)
}

// memOffset resolves the rasterizer's start address: the configured
// override if set (debug tooling, per §6), else the CRTC start
// address.
func (v *VGA) memOffset() int {
	if v.startAddrOverride != nil {
		return *v.startAddrOverride
	}
	return v.Regs.StartAddress()
}

func (v *VGA) setDE(displayMode bool) {
	v0 := v.Regs.GetGeneral(regs.GeneralInputStatus1)
	if displayMode {
		v.Regs.SetGeneral(regs.GeneralInputStatus1, v0&clearDEMask)
	} else {
		v.Regs.SetGeneral(regs.GeneralInputStatus1, v0|^clearDEMask)
	}
}

func (v *VGA) setVR(set bool) {
	v0 := v.Regs.GetGeneral(regs.GeneralInputStatus1)
	if set {
		v.Regs.SetGeneral(regs.GeneralInputStatus1, v0|^clearVRMask)
	} else {
		v.Regs.SetGeneral(regs.GeneralInputStatus1, v0&clearVRMask)
	}
}

// DrawFrame implements the frame driver of §4.6: assert DE, rasterize,
// de-assert DE, then let the backend present the frame and poll input
// (EndFrame). If the backend observed a quit request it returns true
// at once, without the VR pulse and without advancing the frame
// counter; otherwise it optionally pulses VR, advances the frame
// counter and returns false.
func (v *VGA) DrawFrame() (bool, error) {
	v.setDE(true)

	fb, err := v.backend.BeginFrame()
	if err != nil {
		return false, fmt.Errorf("vga: begin frame: %w", err)
	}

	videoMode := v.Regs.VideoMode()
	memOffset := v.memOffset()
	height := v.Regs.Height()

	var rasterErr error
	if videoMode == mode.ModeX320x200 {
		vStretch := raster.VStretch(videoMode)
		rasterErr = raster.RenderLinear(v.Mem, v.Regs, v.Palette, memOffset, height, vStretch, raster.RGBSlice(fb.Pixels))
	} else {
		rasterErr = raster.RenderPlanar(v.Mem, v.Regs, memOffset, height, raster.RGBSlice(fb.Pixels), fb.Pitch)
	}
	if rasterErr != nil {
		return false, fmt.Errorf("vga: rasterize: %w", rasterErr)
	}

	v.setDE(false)

	quit, err := v.backend.EndFrame(v.Input)
	if err != nil {
		return false, fmt.Errorf("vga: end frame: %w", err)
	}
	if quit {
		return true, nil
	}

	if v.simulateVR {
		v.setVR(true)
		time.Sleep(VerticalResetMicro)
		v.setVR(false)
	}

	v.frameCount.Add(1)
	return false, nil
}

// Close releases the backend's resources.
func (v *VGA) Close() error {
	return v.backend.Close()
}
