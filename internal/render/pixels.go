package render

import (
	"image/color"

	"lifewars/internal/core"
)

// TeamPalette maps core display values to colours: dead cells black, player
// one green, player two red, unresolved births grey.
func TeamPalette() []color.RGBA {
	pal := make([]color.RGBA, core.CellUnowned+1)
	pal[core.CellDead] = color.RGBA{A: 255}
	pal[core.CellPlayer1] = color.RGBA{R: 0, G: 150, B: 100, A: 255}
	pal[core.CellPlayer2] = color.RGBA{R: 150, G: 0, B: 0, A: 255}
	pal[core.CellUnowned] = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	return pal
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
