package image2gb

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shades = color.Palette{
	color.RGBA{0xe0, 0xf8, 0xd0, 0xff},
	color.RGBA{0x88, 0xc0, 0x70, 0xff},
	color.RGBA{0x34, 0x68, 0x56, 0xff},
	color.RGBA{0x08, 0x18, 0x20, 0xff},
}

func testExporter(t *testing.T) (*Image2GB, string, func()) {
	dir, err := ioutil.TempDir("", "image2gb")
	require.NoError(t, err)

	m, err := New(filepath.Join(dir, "image2gb.db"), log.New(ioutil.Discard, "", 0))
	require.NoError(t, err)

	return m, dir, func() {
		m.Close()
		os.RemoveAll(dir)
	}
}

func TestExportSolid(t *testing.T) {
	m, dir, done := testExporter(t)
	defer done()

	// Four identical solid tiles collapse to one.
	img := image.NewPaletted(image.Rect(0, 0, 16, 16), shades)

	res, err := m.Export(img, &Asset{Name: "Window"}, dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.UniqueTiles)
	assert.Equal(t, 4, res.TotalTiles)
	assert.Equal(t, 2, res.Width)
	assert.Equal(t, 2, res.Height)

	h, err := ioutil.ReadFile(filepath.Join(dir, "window.h"))
	require.NoError(t, err)
	assert.Contains(t, string(h), "#define GAME_BACKGROUNDS_WINDOW_TILES 1U")

	c, err := ioutil.ReadFile(filepath.Join(dir, "window.c"))
	require.NoError(t, err)
	assert.Contains(t, string(c), "const unsigned char BackgroundDataWindow[] =")
	// One tile of the lightest shade is sixteen zero bytes.
	assert.Contains(t, string(c), "\t0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, "+
		"0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00\n")
	// The map mirrors the 2x2 grid, every entry the single tile.
	assert.Contains(t, string(c), "\t0x00, 0x00,\n\t0x00, 0x00\n};")
}

func TestExportDistinct(t *testing.T) {
	m, dir, done := testExporter(t)
	defer done()

	// Four tiles, each a different solid shade.
	img := image.NewPaletted(image.Rect(0, 0, 16, 16), shades)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetColorIndex(x, y, uint8(y/8<<1|x/8))
		}
	}

	res, err := m.Export(img, &Asset{Name: "Checker"}, dir)
	require.NoError(t, err)

	assert.Equal(t, 4, res.UniqueTiles)

	c, err := ioutil.ReadFile(filepath.Join(dir, "checker.c"))
	require.NoError(t, err)
	assert.Contains(t, string(c), "\t0x00, 0x01,\n\t0x02, 0x03\n};")
}

func TestExportInvalid(t *testing.T) {
	m, dir, done := testExporter(t)
	defer done()

	img := image.NewPaletted(image.Rect(0, 0, 16, 16), shades)

	_, err := m.Export(img, &Asset{Name: "not valid"}, dir)
	assert.Equal(t, errBadName, err)

	_, err = m.Export(img, &Asset{Name: "Window", Bank: 300}, dir)
	assert.Equal(t, errBadBank, err)

	// Out of range dimensions fail before anything is written.
	_, err = m.Export(image.NewPaletted(image.Rect(0, 0, 12, 16), shades), &Asset{Name: "Window"}, dir)
	assert.Error(t, err)

	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	for _, f := range files {
		assert.NotEqual(t, ".c", filepath.Ext(f.Name()))
		assert.NotEqual(t, ".h", filepath.Ext(f.Name()))
	}
}

func TestExportVRAMWarning(t *testing.T) {
	dir, err := ioutil.TempDir("", "image2gb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	b := new(bytes.Buffer)
	m, err := New(filepath.Join(dir, "image2gb.db"), log.New(b, "", 0))
	require.NoError(t, err)
	defer m.Close()

	// 32x32 tiles, every one with distinct content: encode the tile
	// number into the first row of pixels, two bits per pixel.
	img := image.NewPaletted(image.Rect(0, 0, 256, 256), shades)
	for ty := 0; ty < 32; ty++ {
		for tx := 0; tx < 32; tx++ {
			n := ty*32 + tx
			for x := 0; x < 5; x++ {
				img.SetColorIndex(tx*8+x, ty*8, uint8(n>>(2*x)&0x3))
			}
		}
	}

	res, err := m.Export(img, &Asset{Name: "Huge"}, dir)
	require.NoError(t, err)

	assert.Equal(t, 1024, res.UniqueTiles)
	assert.Contains(t, b.String(), "1024 unique tiles")
}

func TestExportFile(t *testing.T) {
	m, dir, done := testExporter(t)
	defer done()

	img := image.NewPaletted(image.Rect(0, 0, 16, 8), shades)
	for x := 8; x < 16; x++ {
		img.SetColorIndex(x, 0, 3)
	}

	file := filepath.Join(dir, "title.png")
	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	res, err := m.ExportFile(file, &Asset{Name: "Title"}, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.UniqueTiles)

	records, err := m.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Title", records[0].Name)
	assert.Equal(t, file, records[0].Source)
	assert.Len(t, records[0].CRC, 8)
	assert.Equal(t, 2, records[0].Tiles)
	assert.Equal(t, 2, records[0].Total)
}
