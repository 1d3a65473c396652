/*
Package tile implements a Game Boy background tile encoder.

A tile is 8 by 8 pixels where each pixel is a 2 bit index into a four
shade palette. On the device each pixel row is stored as two bytes: the
first holds the low bit of each of the eight pixels, most significant bit
first, and the second holds the high bit of each pixel in the same order.
A full tile is therefore 16 bytes.
*/
package tile

const (
	// Size is the width and height of a tile, in pixels.
	Size = 8

	// Colors is the number of palette entries a pixel index can select.
	Colors = 4

	tilePixels = Size * Size
)

// Pixels is one tile of color indices as sampled from the source image,
// stored row-major with the top-left pixel first. Only the low two bits
// of each value are significant.
type Pixels [tilePixels]uint8

// Data is one tile in the packed device format, eight rows of sixteen
// bits each.
type Data struct {
	rows      [Size]uint16
	duplicate bool
}

// Row returns the packed sixteen bit value for row r.
func (d *Data) Row(r int) uint16 {
	return d.rows[r]
}

// Duplicate reports whether an earlier tile in the grid had identical
// content. It is only meaningful after Reduce has run.
func (d *Data) Duplicate() bool {
	return d.duplicate
}

func (d *Data) equal(o *Data) bool {
	for r := 0; r < Size; r++ {
		if d.rows[r] != o.rows[r] {
			return false
		}
	}
	return true
}
