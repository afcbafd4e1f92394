package internal

// Row maps an uppercased, trimmed column name to the raw cell value produced
// by the dataset loader. Values are dynamic: string, int64, float64 or nil
// depending on the source (spreadsheet cells arrive as strings, SQL results
// keep their driver types).
type Row map[string]any

// Dataset is an ordered tabular result from a spreadsheet or SQL source.
// Column names are normalized by the loader before the pipeline sees them.
type Dataset struct {
	Columns []string
	Rows    []Row
}

func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RejectedRecord captures a row excluded from output because its barcode
// carried more than 13 digits. Accumulated during a pass and flushed to the
// audit log afterwards.
type RejectedRecord struct {
	InternalCode string
	RawBarcode   string
	Description  string
	DigitCount   int
}
