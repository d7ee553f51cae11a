package models

// Dump represents a fully parsed materials export: the header columns in
// file order and one Material per data row, in file order.
type Dump struct {
	// Headers holds the dump's column names in their original order.
	Headers []string `json:"headers"`
	// Materials holds one entry per data row, preserving row order.
	Materials []Material `json:"-"`
}

// HasColumn reports whether the dump's header declares the column.
func (d *Dump) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
