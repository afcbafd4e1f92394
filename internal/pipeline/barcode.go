package pipeline

import "strings"

// eanWidth is the canonical EAN-13 code width.
const eanWidth = 13

// CanonicalizeEAN13 reduces a raw barcode value to its decimal digits and
// left-pads the result with zeros to exactly 13 characters. An empty value
// becomes thirteen zeros. Values with more than 13 digits are rejected and
// must be excluded from output by the caller. The EAN-13 check digit is not
// verified, only width and decimal composition.
func CanonicalizeEAN13(v any) (bool, string) {
	digits := DigitsOf(v)
	if len(digits) > eanWidth {
		return false, ""
	}
	return true, strings.Repeat("0", eanWidth-len(digits)) + digits
}

// DigitsOf normalizes v and strips every non-digit character.
func DigitsOf(v any) string {
	s := FormatValue(v)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
