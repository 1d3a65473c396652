package tile

import (
	"fmt"
	"io"
)

// Write emits the packed data for every unique tile to w in grid order,
// sixteen bytes per tile with the low bit plane byte of each row first.
// Tiles flagged as duplicates are skipped.
func Write(w io.Writer, tiles []Data) error {
	var tmp [2]byte
	for t := range tiles {
		if tiles[t].duplicate {
			continue
		}

		for r := 0; r < Size; r++ {
			tmp[0] = byte(tiles[t].rows[r] >> 8)
			tmp[1] = byte(tiles[t].rows[r] & 0xff)

			if _, err := w.Write(tmp[:]); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteData emits the unique tile data to w as the body of a C array, one
// tile of sixteen uppercase hex values per tab indented line. unique must
// be the count returned by Reduce; it decides which tile is last so no
// separator trails it.
func WriteData(w io.Writer, tiles []Data, unique int) error {
	printed := 0

	for t := range tiles {
		if tiles[t].duplicate {
			continue
		}
		printed++

		if _, err := fmt.Fprint(w, "\t"); err != nil {
			return err
		}

		for r := 0; r < Size; r++ {
			if _, err := fmt.Fprintf(w, "0x%02X, 0x%02X", tiles[t].rows[r]>>8, tiles[t].rows[r]&0xff); err != nil {
				return err
			}

			if r != Size-1 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
		}

		separator := "\n"
		if printed < unique {
			separator = ",\n"
		}
		if _, err := fmt.Fprint(w, separator); err != nil {
			return err
		}
	}

	return nil
}

// WriteMap emits the tile map to w in the same C array body format,
// breaking the line after every width entries so the listing has the same
// rows and columns as the image.
func WriteMap(w io.Writer, tileMap []int, width int) error {
	if _, err := fmt.Fprint(w, "\t"); err != nil {
		return err
	}

	for t, v := range tileMap {
		if _, err := fmt.Fprintf(w, "0x%02X", v); err != nil {
			return err
		}

		if t == len(tileMap)-1 {
			break
		}

		separator := ", "
		if (t+1)%width == 0 {
			separator = ",\n\t"
		}
		if _, err := fmt.Fprint(w, separator); err != nil {
			return err
		}
	}

	return nil
}
