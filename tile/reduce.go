package tile

// Reduce scans tiles in grid order and flags every tile whose content
// matches an earlier one as a duplicate. It returns the number of unique
// tiles left and the tile map: for each original grid position, the index
// that tile's data will have once the duplicates are dropped. The first
// occurrence of any content is always the one that survives; later copies
// are redirected to its compacted index.
//
// The scan is quadratic in the number of tiles which is fine for the 1024
// tile ceiling a 256 by 256 pixel image imposes.
func Reduce(tiles []Data) (int, []int) {
	tileMap := make([]int, len(tiles))
	for i := range tileMap {
		tileMap[i] = i
	}

	var duplicates, previous int

	for t := range tiles {
		// A tile flagged by an earlier pass will not own a slot in
		// the final data.
		if tiles[t].duplicate {
			previous++
			continue
		}

		// Subtract the duplicates found before this tile to get the
		// position it will occupy once they are removed.
		tileMap[t] = t - previous

		// Only scan forward; everything behind is already settled.
		for c := t + 1; c < len(tiles); c++ {
			if tiles[c].duplicate || !tiles[t].equal(&tiles[c]) {
				continue
			}

			tiles[c].duplicate = true
			duplicates++
			tileMap[c] = tileMap[t]
		}
	}

	return len(tiles) - duplicates, tileMap
}
