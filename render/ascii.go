package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/tile"
)

// WriteASCII writes g to w as height rows of width bytes, one glyph per
// cell, each row terminated by '\n'. glyph is called once per cell with
// that cell's Variant; it is the caller's responsibility to return a
// distinct, printable byte per Variant.ID() it cares to distinguish.
//
// Complexity: O(width*height).
func WriteASCII(w io.Writer, g *grid.Grid[tile.Variant], glyph func(tile.Variant) byte) error {
	width, height := g.Size()
	row := make([]byte, width+1)
	row[width] = '\n'

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v, err := g.Get(x, y)
			if err != nil {
				return fmt.Errorf("render: (%d,%d): %w", x, y, err)
			}
			row[x] = glyph(v)
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("render: writing row %d: %w", y, err)
		}
	}

	return nil
}
