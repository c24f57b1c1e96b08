// Command vga-inspect is a terminal register inspector for a running
// VGA emulator: a bubbletea TUI that polls the register file and frame
// counter on a tick and renders the Sequencer, Graphics Controller,
// CRT Controller and General banks side by side, highlighting bytes
// that changed since the last tick.
//
// Grounded on _examples/newhook-6502/monitor/main.go's Monitor
// (lipgloss panel styles, stepTick-driven polling, change-highlighting
// against a captured previous snapshot), adapted from disassembling
// 6502 memory to displaying VGA register banks.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	nullbackend "github.com/Ragnaroek/vga-emu/backend/null"
	"github.com/Ragnaroek/vga-emu/mode"
	"github.com/Ragnaroek/vga-emu/regs"
	"github.com/Ragnaroek/vga-emu/vga"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(28)

	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(28)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)
)

type pollTick struct{}

func doPoll() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return pollTick{}
	})
}

type bankSnapshot struct {
	sc   [regs.SCRegCount]uint8
	gc   [regs.GCRegCount]uint8
	crt  [regs.CRTRegCount]uint8
	gen  [regs.GeneralRegCount]uint8
}

func captureSnapshot(r *regs.File) bankSnapshot {
	var s bankSnapshot
	for i := 0; i < regs.SCRegCount; i++ {
		s.sc[i] = r.GetSC(regs.SCReg(i))
	}
	for i := 0; i < regs.GCRegCount; i++ {
		s.gc[i] = r.GetGC(regs.GCReg(i))
	}
	for i := 0; i < regs.CRTRegCount; i++ {
		s.crt[i] = r.GetCRT(regs.CRTReg(i))
	}
	for i := 0; i < regs.GeneralRegCount; i++ {
		s.gen[i] = r.GetGeneral(regs.GeneralReg(i))
	}
	return s
}

// Inspector is the tea.Model for the register inspector. It drives a
// real *vga.VGA on a null/offscreen backend: every poll tick advances
// one frame and re-snapshots the register banks, so the displayed
// state (and the frame counter) reflect a live-running emulator rather
// than a static register file.
type Inspector struct {
	vg   *vga.VGA
	regs *regs.File

	current bankSnapshot
	last    bankSnapshot

	width  int
	height int

	modeInput  textinput.Model
	modeStatus string
}

// NewInspector returns an Inspector driving vg, polling and advancing
// it on a tick.
func NewInspector(vg *vga.VGA) *Inspector {
	snap := captureSnapshot(vg.Regs)

	ti := textinput.New()
	ti.Placeholder = "10 or 13"
	ti.Prompt = "mode> "
	ti.CharLimit = 2

	return &Inspector{
		vg:        vg,
		regs:      vg.Regs,
		current:   snap,
		last:      snap,
		modeInput: ti,
	}
}

func (m Inspector) Init() tea.Cmd {
	return doPoll()
}

func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTick:
		if _, err := m.vg.DrawFrame(); err != nil {
			m.modeStatus = err.Error()
		}
		m.last = m.current
		m.current = captureSnapshot(m.regs)
		return m, doPoll()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.modeInput.Focused() {
			switch msg.String() {
			case "esc":
				m.modeInput.Blur()
				m.modeInput.SetValue("")
				return m, nil
			case "enter":
				m.applyModeInput()
				return m, nil
			}
			var cmd tea.Cmd
			m.modeInput, cmd = m.modeInput.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.modeInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// applyModeInput parses the text field as a hex video mode number and
// re-initializes the register file's mode defaults, mirroring what a
// real BIOS mode-set call would do.
func (m *Inspector) applyModeInput() {
	raw := strings.TrimSpace(m.modeInput.Value())
	v, err := strconv.ParseUint(raw, 16, 8)
	if err != nil {
		m.modeStatus = fmt.Sprintf("bad mode %q: %v", raw, err)
	} else if err := mode.Init(m.regs, uint8(v)); err != nil {
		m.modeStatus = err.Error()
	} else {
		m.modeStatus = fmt.Sprintf("switched to mode %#02x", v)
	}
	m.modeInput.Blur()
	m.modeInput.SetValue("")
}

func (m Inspector) View() string {
	title := titleStyle.Render("vga-inspect")
	sc := m.renderBank("SC", m.current.sc[:], m.last.sc[:])
	gc := m.renderBank("GC", m.current.gc[:], m.last.gc[:])
	crt := m.renderBank("CRT", m.current.crt[:], m.last.crt[:])
	gen := m.renderBank("General", m.current.gen[:], m.last.gen[:])

	frame := frameStyle.Render(fmt.Sprintf("Video mode: %#02x\nFrame: %d", m.regs.VideoMode(), m.vg.FrameCount()))

	row := lipgloss.JoinHorizontal(lipgloss.Top, sc, gc, crt, gen)
	footer := "m: set mode  q: quit"
	if m.modeInput.Focused() || m.modeInput.Value() != "" {
		footer = m.modeInput.View()
	} else if m.modeStatus != "" {
		footer = m.modeStatus + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, row, frame, "\n"+footer)
}

func (m Inspector) renderBank(name string, current, last []uint8) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", name)
	for i, v := range current {
		line := fmt.Sprintf("%02d: %02x", i, v)
		if v != last[i] {
			line = changedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}

func main() {
	videoMode := flag.Uint("mode", uint(mode.ModeX320x200), "initial video mode (0x10 or 0x13)")
	flag.Parse()

	vg, err := vga.NewBuilder().
		VideoMode(uint8(*videoMode)).
		Backend(nullbackend.New()).
		Build()
	if err != nil {
		fmt.Println("vga-inspect:", err)
		return
	}
	defer vg.Close()

	inspector := NewInspector(vg)

	p := tea.NewProgram(inspector)
	if _, err := p.Run(); err != nil {
		fmt.Println("vga-inspect:", err)
	}
}
