package raster

import "bitty/internal/bytestore"

// CellIndex maps canvas pixel (px, py), origin top-left, to its position in
// the byte sequence. Rows are counted from the bottom so the top row of the
// canvas shows the last row of the buffer.
func CellIndex(s, px, py int) int {
	return s*(s-1-py) + px
}

// Locate splits a cell index into the containing word and the byte within it
// (0 is the least significant byte).
func Locate(cell int) (wordIndex, byteSel int) {
	return cell / 4, cell % 4
}

// Sample returns the byte shown at canvas pixel (px, py). Pixels that fall
// outside the grid or past the end of the buffer read as 0.
func Sample(words bytestore.WordView, s, px, py int) uint8 {
	if px < 0 || py < 0 || px >= s || py >= s {
		return 0
	}
	cell := CellIndex(s, px, py)
	if cell >= words.ByteLen() {
		return 0
	}
	wi, sel := Locate(cell)
	w, ok := words.Word(wi)
	if !ok {
		return 0
	}
	return uint8((w >> (8 * sel)) & 0xFF)
}
