// Package gearsheet converts Silent Gear material exports into styled
// multi-sheet workbooks.
package gearsheet

// DefaultOutput is the workbook path used when none is configured.
const DefaultOutput = "materials.xlsx"

// Options configures a conversion run.
type Options struct {
	// Output is the workbook file path to write.
	Output string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Output: DefaultOutput,
	}
}

// OutputPath returns the configured output path, falling back to DefaultOutput.
func (o Options) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	return DefaultOutput
}
