package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"exportador/internal"
)

// ErrBaseColumnMissing signals that the configured base column is absent
// from the dataset. Fatal to the pass: no rows are processed.
var ErrBaseColumnMissing = errors.New("base column not found in dataset")

// Builder assembles output lines for one preview or export pass. Rejected
// rows accumulate until Reset. Not safe for concurrent use; the design
// assumes one pass at a time.
type Builder struct {
	format   Format
	sel      *Selection
	rejected []internal.RejectedRecord
}

func NewBuilder(f Format, sel *Selection) *Builder {
	return &Builder{format: f, sel: sel}
}

func (b *Builder) Reset() {
	b.rejected = b.rejected[:0]
}

func (b *Builder) Rejected() []internal.RejectedRecord {
	return b.rejected
}

// BuildLine returns the pipe-delimited line for row. When EAN-13 validation
// is on and the barcode carries more than 13 digits, the row is recorded as
// rejected and ok is false: no partial line is ever emitted.
func (b *Builder) BuildLine(row internal.Row) (line string, ok bool) {
	prefix := make([]string, 0, len(b.format.MandatoryPrefix))
	for _, col := range b.format.MandatoryPrefix {
		val := FormatValue(row[col])
		if b.format.ValidateEAN13 && col == b.format.BarcodeColumn {
			accepted, code := CanonicalizeEAN13(row[col])
			if !accepted {
				b.rejected = append(b.rejected, internal.RejectedRecord{
					InternalCode: b.internalCode(row),
					RawBarcode:   val,
					Description:  FormatValue(row[b.format.BaseColumn]),
					DigitCount:   len(DigitsOf(row[col])),
				})
				return "", false
			}
			val = code
		}
		prefix = append(prefix, val)
	}

	base := FormatValue(row[b.format.BaseColumn])
	desc := base
	if extras := ComposeExtras(row, b.sel, b.format); extras != "" {
		desc = strings.TrimSpace(base + " " + extras)
	}

	return strings.Join(prefix, "|") + "|" + desc, true
}

// internalCode picks the identifying prefix value for a rejected record:
// the first mandatory-prefix column that is not the barcode itself.
func (b *Builder) internalCode(row internal.Row) string {
	for _, col := range b.format.MandatoryPrefix {
		if col != b.format.BarcodeColumn {
			return FormatValue(row[col])
		}
	}
	return ""
}

// PassResult is the outcome of one preview or export pass.
type PassResult struct {
	Lines    []string
	Rejected []internal.RejectedRecord
	// MissingPrefix lists configured prefix columns absent from the dataset.
	// They render as empty fields; the caller may surface a warning.
	MissingPrefix []string
}

// Run executes a single blocking pass over the dataset rows in input order.
// limit > 0 caps the number of input rows considered (preview); limit <= 0
// processes everything. A missing base column aborts before any row is
// touched.
func Run(ds *internal.Dataset, f Format, sel *Selection, limit int) (PassResult, error) {
	if !ds.HasColumn(f.BaseColumn) {
		return PassResult{}, fmt.Errorf("%w: %s", ErrBaseColumnMissing, f.BaseColumn)
	}

	var missing []string
	for _, col := range f.MandatoryPrefix {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	rows := ds.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	b := NewBuilder(f, sel)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line, ok := b.BuildLine(row)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	return PassResult{Lines: lines, Rejected: b.Rejected(), MissingPrefix: missing}, nil
}
