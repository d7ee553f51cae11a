package writer

import "strconv"

// cellValue converts a raw dump string into the value written to the cell.
// Integers and decimals become numbers so the sheet sorts and aggregates
// naturally; everything else stays a string.
func cellValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
