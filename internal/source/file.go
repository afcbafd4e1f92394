package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"exportador/internal"
)

const utf8BOM = "\xEF\xBB\xBF"

// LoadFile loads a tabular dataset from an XLSX workbook or a CSV file,
// dispatching on the extension. sheet selects the workbook sheet; empty
// means the first one.
func LoadFile(path, sheet string) (*internal.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q: use XLSX or CSV", filepath.Ext(path))
	}
}

// SheetNames lists the sheets of an XLSX workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func LoadXLSX(path, sheet string) (*internal.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return datasetFromRecords(rows)
}

func LoadCSV(path string) (*internal.Dataset, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(blob))
	r.Comma = sniffDelimiter(blob)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return datasetFromRecords(records)
}

// sniffDelimiter counts candidate separators over a 4KB sample and picks
// the most frequent one, defaulting to comma.
func sniffDelimiter(blob []byte) rune {
	sample := blob
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	best, bestCount := ',', 0
	for _, c := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(sample, []byte(string(c))); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// datasetFromRecords converts raw rows into a Dataset: the first record is
// the header (BOM stripped, names trimmed and uppercased), the rest become
// name→value maps. Fully empty rows are skipped.
func datasetFromRecords(records [][]string) (*internal.Dataset, error) {
	if len(records) == 0 {
		return nil, errors.New("dataset has no header row")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToUpper(strings.TrimSpace(name))
	}

	ds := &internal.Dataset{Columns: columns}
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := make(internal.Row, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
