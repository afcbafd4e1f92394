package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"exportador/internal"
)

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// AppendRejectionLog appends one audit block to the log file at path: a
// timestamped header naming the pass context and the rejection count, a
// column header line, one tab-delimited line per record and a trailing blank
// line. No-op when records is empty. Logging is best-effort; callers absorb
// the returned error so a failed write never aborts a completed pass.
func AppendRejectionLog(path, context string, records []internal.RejectedRecord) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s - Itens com EAN > 13 dígitos: %d\n",
		time.Now().Format("2006-01-02 15:04:05"), context, len(records))
	b.WriteString("COD_INTERNO\tCOD_EAN\tDES_PRODUTO\tLEN\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%d\n",
			rec.InternalCode, rec.RawBarcode, newlineCollapser.Replace(rec.Description), rec.DigitCount)
	}
	b.WriteString("\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
