package raster

// rgb8 is a single 8-bit-per-channel color.
type rgb8 struct {
	r, g, b uint8
}

// ega16 is the fixed 16-color EGA palette used by the planar rasterizer,
// independent of the DAC palette table. Source:
// https://wasteland.fandom.com/wiki/EGA_Colour_Palette, reproduced from
// _examples/original_source/src/backend.rs's default_16_color.
var ega16 = [16]rgb8{
	0x00: {0x00, 0x00, 0x00},
	0x01: {0x00, 0x00, 0xA8},
	0x02: {0x00, 0xA8, 0x00},
	0x03: {0x00, 0xA8, 0xA8},
	0x04: {0xA8, 0x00, 0x00},
	0x05: {0xA8, 0x00, 0xA8},
	0x06: {0xA8, 0x54, 0x00},
	0x07: {0xA8, 0xA8, 0xA8},
	0x08: {0x54, 0x54, 0x54},
	0x09: {0x54, 0x54, 0xFE},
	0x0A: {0x54, 0xFE, 0x54},
	0x0B: {0x54, 0xFE, 0xFE},
	0x0C: {0xFE, 0x54, 0x54},
	0x0D: {0xFE, 0x54, 0xFE},
	0x0E: {0xFE, 0xFE, 0x54},
	0x0F: {0xFE, 0xFE, 0xFE},
}
