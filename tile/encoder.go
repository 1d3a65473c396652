package tile

// Encode packs one tile of pixel indices into the device row format. For
// each pixel the low bit of its index lands in the first byte of the row
// and the high bit in the second, with the leftmost pixel in the most
// significant position of each byte. A pixel index of 1 in the leftmost
// column therefore reads back as 0x8000 in that row. Any bits above the
// two significant ones are ignored.
func Encode(p *Pixels) Data {
	var d Data

	c, r := 1, 0
	for _, v := range p {
		low := uint16(v & 0x1)
		high := uint16(v&0x2) >> 1

		d.rows[r] |= low << (16 - c)
		d.rows[r] |= high << (8 - c)

		if c == Size {
			c = 1
			r++
		} else {
			c++
		}
	}

	return d
}
