package models

// Table represents one output sheet's contents: the configured headers in
// declared order and the projected data rows, aligned to those headers.
type Table struct {
	// Sheet is the output sheet name.
	Sheet string `json:"sheet"`
	// Headers holds the configured column names in declared order.
	Headers []string `json:"headers"`
	// Rows holds one cell slice per material, aligned to Headers.
	Rows [][]string `json:"rows"`
}
