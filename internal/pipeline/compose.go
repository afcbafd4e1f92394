package pipeline

import (
	"strings"

	"exportador/internal"
)

// ComposeExtras assembles the optional attribute block from the columns
// flagged in the selection, in selection order. Columns whose normalized
// value is empty contribute nothing, so no dangling labels appear. When no
// fragment is produced the block is the empty string: empty bracket pairs
// are never emitted.
func ComposeExtras(row internal.Row, sel *Selection, f Format) string {
	if sel == nil {
		return ""
	}
	parts := make([]string, 0, sel.Len())
	for _, col := range sel.Columns() {
		opt, _ := sel.Get(col)
		if !opt.Include {
			continue
		}
		val := FormatValue(row[col])
		if val == "" {
			continue
		}
		label := strings.TrimSpace(opt.Label)
		if label != "" {
			parts = append(parts, label+f.LabelSeparator+val)
		} else {
			parts = append(parts, val)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return f.Opening + strings.Join(parts, f.PairSeparator) + f.Closing
}
