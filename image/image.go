/*
Package image reads a source bitmap into Game Boy tile order.

An image must be between 8 and 256 pixels on each axis and both
dimensions must be whole tiles. Pixels index a four shade palette where 0
is the lightest shade and 3 the darkest. A source image that is already
paletted with at most four colors is used as-is, palette order included;
anything else is quantized down to four colors first with the resulting
palette ranked lightest to darkest.
*/
package image

import "github.com/bodgit/image2gb/tile"

const (
	sizeMin = tile.Size
	sizeMax = 256

	maxTilesPerAxis = sizeMax / tile.Size
)

// VRAMTileLimit is how many unique tiles fit in the device's video memory
// at the same time. More than this still exports but will not display
// correctly without banking tricks.
const VRAMTileLimit = 256
