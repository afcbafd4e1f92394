package main

import (
	"testing"

	"exportador/internal"
	"exportador/internal/pipeline"
)

func TestParseCols(t *testing.T) {
	ds := &internal.Dataset{
		Columns: []string{"COD_INTERNO", "COD_EAN", "DES_PRODUTO", "DEPARTAMENTO", "QTD_ESTOQUE_ATUAL"},
	}
	format := pipeline.DefaultFormat()

	sel, err := parseCols("departamento=DEP, QTD_ESTOQUE_ATUAL", ds, format)
	if err != nil {
		t.Fatal(err)
	}
	if opt, _ := sel.Get("DEPARTAMENTO"); !opt.Include || opt.Label != "DEP" {
		t.Fatalf("departamento: %+v", opt)
	}
	if opt, _ := sel.Get("QTD_ESTOQUE_ATUAL"); !opt.Include || opt.Label != "QTD" {
		t.Fatalf("qtd should keep its default label: %+v", opt)
	}

	if _, err := parseCols("DES_PRODUTO", ds, format); err == nil {
		t.Fatal("base column must not be selectable")
	}
	if _, err := parseCols("NOPE", ds, format); err == nil {
		t.Fatal("unknown column must error")
	}

	sel, err = parseCols("", ds, format)
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range sel.Columns() {
		if opt, _ := sel.Get(col); opt.Include {
			t.Fatalf("empty spec must leave %s unchecked", col)
		}
	}
}
