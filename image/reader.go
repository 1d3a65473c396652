package image

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/bodgit/image2gb/tile"
	"github.com/ericpauley/go-quantize/quantize"
)

var (
	errTooSmall = errors.New("image: each axis must be at least 8 pixels")
	errTooBig   = errors.New("image: each axis must be at most 256 pixels")
	errNotTiled = errors.New("image: dimensions must be multiples of 8")
)

// Grid is a validated source image cut into 8 by 8 tiles.
type Grid struct {
	width  int
	height int
	image  *image.Paletted
}

// Width returns the horizontal size, in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the vertical size, in tiles.
func (g *Grid) Height() int {
	return g.height
}

// Tiles returns the total number of tiles in the grid.
func (g *Grid) Tiles() int {
	return g.width * g.height
}

// Tile copies out the pixel indices for the tile at (col, row), reading
// top-left to bottom-right. Valid for col in [0, Width) and row in
// [0, Height).
func (g *Grid) Tile(col, row int) *tile.Pixels {
	var p tile.Pixels
	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			p[y*tile.Size+x] = g.image.ColorIndexAt(col*tile.Size+x, row*tile.Size+y) & (tile.Colors - 1)
		}
	}
	return &p
}

// Perceived brightness, used to rank a quantized palette so that index 0
// ends up as the lightest shade.
func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return 299*r + 587*g + 114*b
}

// FromImage validates m and returns it as a tile grid.
func FromImage(m image.Image) (*Grid, error) {
	b := m.Bounds()

	switch {
	case b.Dx() < sizeMin || b.Dy() < sizeMin:
		return nil, errTooSmall
	case b.Dx() > sizeMax || b.Dy() > sizeMax:
		return nil, errTooBig
	case b.Dx()%tile.Size != 0 || b.Dy()%tile.Size != 0:
		return nil, errNotTiled
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > tile.Colors {
		q := quantize.MedianCutQuantizer{}
		p := q.Quantize(make(color.Palette, 0, tile.Colors), m)
		sort.Slice(p, func(i, j int) bool {
			return luminance(p[i]) > luminance(p[j])
		})

		pm = image.NewPaletted(b, p)
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return &Grid{
		width:  b.Dx() / tile.Size,
		height: b.Dy() / tile.Size,
		image:  pm,
	}, nil
}
