package vga

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ragnaroek/vga-emu/backend/null"
	"github.com/Ragnaroek/vga-emu/mode"
)

func TestDrawFrameMonotonicallyIncrementsFrameCount(t *testing.T) {
	assert := assert.New(t)

	v, err := NewBuilder().
		VideoMode(mode.ModeX320x200).
		Backend(null.New()).
		Build()
	assert.NoError(err)

	for i := 1; i <= 100; i++ {
		quit, err := v.DrawFrame()
		assert.NoError(err)
		assert.False(quit)
		assert.Equal(uint64(i), v.FrameCount())
	}

	assert.Equal(uint64(100), v.FrameCount())
}

func TestDrawFrameReportsQuitWithoutAdvancingFrameCount(t *testing.T) {
	assert := assert.New(t)

	be := null.New()
	v, err := NewBuilder().
		VideoMode(mode.Mode16Color640x350).
		Backend(be).
		Build()
	assert.NoError(err)

	be.Quit = true
	quit, err := v.DrawFrame()
	assert.NoError(err)
	assert.True(quit)
	assert.Equal(uint64(0), v.FrameCount())
}
