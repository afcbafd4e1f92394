package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func mkWorkbook(t *testing.T, path string, sheets map[string][][]any) {
	t.Helper()
	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatal(err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatal(err)
			}
		}
		for r, row := range rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				_ = f.SetCellValue(name, cell, v)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.xlsx")
	mkWorkbook(t, path, map[string][][]any{
		"Plan1": {
			{" cod_interno ", "cod_ean", "des_produto"},
			{"123", "789", "SABONETE"},
			{"456", "", "CREME XYZ"},
			{"", "", ""},
		},
	})

	ds, err := LoadFile(path, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"COD_INTERNO", "COD_EAN", "DES_PRODUTO"}
	if !reflect.DeepEqual(ds.Columns, want) {
		t.Fatalf("columns=%v", ds.Columns)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("rows=%d", len(ds.Rows))
	}
	if ds.Rows[0]["DES_PRODUTO"] != "SABONETE" {
		t.Fatalf("row=%+v", ds.Rows[0])
	}
}

func TestSheetNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.xlsx")
	mkWorkbook(t, path, map[string][][]any{
		"Estoque": {{"des_produto"}, {"X"}},
	})
	sheets, err := SheetNames(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheets) != 1 || sheets[0] != "Estoque" {
		t.Fatalf("sheets=%v", sheets)
	}

	ds, err := LoadFile(path, "Estoque")
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Rows) != 1 {
		t.Fatalf("rows=%d", len(ds.Rows))
	}
}

func TestLoadCSVSniffsDelimiter(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "semicolon", body: "cod_interno;des_produto\n123;SABONETE\n"},
		{name: "comma", body: "cod_interno,des_produto\n123,SABONETE\n"},
		{name: "tab", body: "cod_interno\tdes_produto\n123\tSABONETE\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "produtos.csv")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			ds, err := LoadFile(path, "")
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(ds.Columns, []string{"COD_INTERNO", "DES_PRODUTO"}) {
				t.Fatalf("columns=%v", ds.Columns)
			}
			if len(ds.Rows) != 1 || ds.Rows[0]["COD_INTERNO"] != "123" {
				t.Fatalf("rows=%+v", ds.Rows)
			}
		})
	}
}

func TestLoadCSVStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.csv")
	body := "\xEF\xBB\xBFcod_interno,des_produto\n1,X\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Columns[0] != "COD_INTERNO" {
		t.Fatalf("columns=%v", ds.Columns)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	if _, err := LoadFile("produtos.ods", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestSniffDelimiterDefaultsToComma(t *testing.T) {
	if got := sniffDelimiter([]byte("singlecolumn\nvalue\n")); got != ',' {
		t.Fatalf("got %q", got)
	}
}
