// Package models defines data structures for the materials conversion pipeline.
package models

// NameColumn is the dump column holding a material's display name, which
// serves as its identity.
const NameColumn = "Name"

// Material represents a single material row from the dump, keyed by the
// dump's header columns. It is immutable once constructed.
type Material struct {
	// Row is the 1-based data row number in the source dump.
	Row    int
	values map[string]string
}

// NewMaterial builds a Material from a header slice and an aligned field
// slice. Fields beyond the header are ignored; a shorter field slice leaves
// the trailing columns empty.
func NewMaterial(row int, headers, fields []string) Material {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(fields) {
			values[h] = fields[i]
		} else {
			values[h] = ""
		}
	}
	return Material{Row: row, values: values}
}

// Get returns the raw value for a column, or the empty string when the
// column is absent from the dump.
func (m Material) Get(column string) string {
	return m.values[column]
}

// Has reports whether the column existed in the source dump's header.
func (m Material) Has(column string) bool {
	_, ok := m.values[column]
	return ok
}

// Name returns the material's display name.
func (m Material) Name() string {
	return m.values[NameColumn]
}
