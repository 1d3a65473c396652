package image2gb

import (
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	gbimage "github.com/bodgit/image2gb/image"
	"github.com/bodgit/image2gb/tile"
)

// Result summarizes one export.
type Result struct {
	UniqueTiles int
	TotalTiles  int
	Width       int // in tiles
	Height      int
}

// Export converts m and writes <name>.h and <name>.c into dir, where
// <name> is the lowercased asset name. The tile data, tile map and every
// intermediate buffer are owned by this call alone.
func (i *Image2GB) Export(m image.Image, asset *Asset, dir string) (*Result, error) {
	if err := asset.validate(); err != nil {
		return nil, err
	}

	grid, err := gbimage.FromImage(m)
	if err != nil {
		return nil, err
	}

	tiles := make([]tile.Data, 0, grid.Tiles())
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			tiles = append(tiles, tile.Encode(grid.Tile(col, row)))
		}
	}

	unique, tileMap := tile.Reduce(tiles)

	// Advisory only; the files are still written.
	if unique > gbimage.VRAMTileLimit {
		i.logger.Printf("warning: \"%s\" has %d unique tiles, only %d fit in video memory at once (384 using a hack)\n",
			asset.Name, unique, gbimage.VRAMTileLimit)
	}

	res := &Result{
		UniqueTiles: unique,
		TotalTiles:  grid.Tiles(),
		Width:       grid.Width(),
		Height:      grid.Height(),
	}

	base := filepath.Join(dir, strings.ToLower(asset.Name))

	h, err := os.Create(base + ".h")
	if err != nil {
		return nil, err
	}

	if err := asset.writeHeader(h, res); err != nil {
		h.Close()
		return nil, err
	}

	if err := h.Close(); err != nil {
		return nil, err
	}

	c, err := os.Create(base + ".c")
	if err != nil {
		return nil, err
	}

	if err := asset.writeSource(c, res, tiles, tileMap); err != nil {
		c.Close()
		return nil, err
	}

	if err := c.Close(); err != nil {
		return nil, err
	}

	return res, nil
}

// ExportFile decodes the image in file, exports it into dir and records
// the asset in the catalog along with the CRC of the source file.
func (i *Image2GB) ExportFile(file string, asset *Asset, dir string) (*Result, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	m, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	res, err := i.Export(m, asset, dir)
	if err != nil {
		return nil, err
	}

	crc, err := crcFile(file)
	if err != nil {
		return nil, err
	}

	if err := i.db.Save(&AssetRecord{
		Name:   asset.Name,
		Source: file,
		CRC:    crc,
		Bank:   asset.Bank,
		Tiles:  res.UniqueTiles,
		Total:  res.TotalTiles,
		Width:  res.Width,
		Height: res.Height,
	}); err != nil {
		return nil, err
	}

	return res, nil
}

// List returns the catalog of previously exported assets.
func (i *Image2GB) List() ([]AssetRecord, error) {
	return i.db.List()
}
