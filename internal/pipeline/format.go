package pipeline

import "exportador/internal/config"

// Format carries the user-facing formatting options for one preview or
// export pass. Read-only during line assembly.
type Format struct {
	Opening        string
	Closing        string
	PairSeparator  string
	LabelSeparator string

	BaseColumn      string
	MandatoryPrefix []string
	BarcodeColumn   string
	ValidateEAN13   bool
}

func DefaultFormat() Format {
	return Format{
		Opening:         "(",
		Closing:         ")",
		PairSeparator:   " / ",
		LabelSeparator:  ": ",
		BaseColumn:      "DES_PRODUTO",
		MandatoryPrefix: []string{"COD_INTERNO", "COD_EAN"},
		BarcodeColumn:   "COD_EAN",
	}
}

func FormatFromConfig(cfg config.Config) Format {
	f := Format{
		Opening:         cfg.Opening,
		Closing:         cfg.Closing,
		PairSeparator:   cfg.PairSeparator,
		LabelSeparator:  cfg.LabelSeparator,
		BaseColumn:      cfg.BaseColumn,
		MandatoryPrefix: cfg.MandatoryPrefix,
		BarcodeColumn:   cfg.BarcodeColumn,
		ValidateEAN13:   cfg.ValidateEAN13,
	}
	if len(f.MandatoryPrefix) == 0 {
		f.MandatoryPrefix = DefaultFormat().MandatoryPrefix
	}
	if f.BaseColumn == "" {
		f.BaseColumn = DefaultFormat().BaseColumn
	}
	return f
}

// fixed reports whether a column belongs to the fixed output (base column
// or mandatory prefix) and is therefore excluded from the attribute block.
func (f Format) fixed(column string) bool {
	if column == f.BaseColumn {
		return true
	}
	for _, c := range f.MandatoryPrefix {
		if c == column {
			return true
		}
	}
	return false
}
