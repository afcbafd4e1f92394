package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders an arbitrary cell value as a clean display string.
// nil and NaN map to "", floats with a zero fractional part collapse to
// their integer form ("3", never "3.0"), everything else is its trimmed
// string form. Total over its input domain: never fails.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	// 'f' with -1 precision prints integral floats without a decimal part.
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DefaultLabel derives the default attribute label from a column name:
// the first underscore-delimited segment, uppercased, at most 4 runes.
// Hyphens and spaces count as separators. The result is only a starting
// point; labels stay editable in the column selection.
func DefaultLabel(column string) string {
	if column == "" {
		return "VAL"
	}
	s := strings.NewReplacer("-", "_", " ", "_").Replace(column)
	seg, _, _ := strings.Cut(s, "_")
	seg = strings.ToUpper(strings.TrimSpace(seg))
	if r := []rune(seg); len(r) > 4 {
		return string(r[:4])
	}
	return seg
}
