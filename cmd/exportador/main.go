package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"exportador/internal"
	"exportador/internal/config"
	"exportador/internal/pipeline"
	"exportador/internal/source"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sheets":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "xlsx workbook path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		sheets, err := source.SheetNames(*input)
		must(err)
		for _, s := range sheets {
			fmt.Println(s)
		}
	case "columns":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "xlsx or csv path")
		sheet := fs.String("sheet", "", "workbook sheet (default: first)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		ds, err := source.LoadFile(*input, *sheet)
		must(err)
		format := pipeline.FormatFromConfig(cfg)
		sel := pipeline.SelectionFor(ds, format)
		for _, col := range ds.Columns {
			if opt, ok := sel.Get(col); ok {
				fmt.Printf("%s\t(label: %s)\n", col, opt.Label)
			} else {
				fmt.Printf("%s\t(fixed)\n", col)
			}
		}
	case "preview":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "xlsx or csv path")
		sheet := fs.String("sheet", "", "workbook sheet (default: first)")
		cols := fs.String("cols", "", "attribute columns: COL or COL=LABEL, comma separated")
		limit := fs.Int("limit", cfg.PreviewLines, "max input rows to preview")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		ds, err := source.LoadFile(*input, *sheet)
		must(err)
		runPass(cfg, ds, *cols, *limit, "Pré-visualização", "")
	case "export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "xlsx or csv path")
		sheet := fs.String("sheet", "", "workbook sheet (default: first)")
		cols := fs.String("cols", "", "attribute columns: COL or COL=LABEL, comma separated")
		out := fs.String("out", "", "output txt path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--input and --out are required"))
		}
		ds, err := source.LoadFile(*input, *sheet)
		must(err)
		runPass(cfg, ds, *cols, 0, "Exportação", *out)
	case "query:preview":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		cols := fs.String("cols", "", "attribute columns: COL or COL=LABEL, comma separated")
		limit := fs.Int("limit", cfg.PreviewLines, "max input rows to preview")
		_ = fs.Parse(os.Args[2:])
		ds, err := source.QueryDataset(context.Background(), cfg)
		must(err)
		log.Printf("query returned %d rows", len(ds.Rows))
		runPass(cfg, ds, *cols, *limit, "Pré-visualização", "")
	case "query:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		cols := fs.String("cols", "", "attribute columns: COL or COL=LABEL, comma separated")
		out := fs.String("out", "", "output txt path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		ds, err := source.QueryDataset(context.Background(), cfg)
		must(err)
		log.Printf("query returned %d rows", len(ds.Rows))
		runPass(cfg, ds, *cols, 0, "Exportação", *out)
	default:
		usage()
		os.Exit(1)
	}
}

// runPass executes one preview or export pass and reports its outcome. An
// empty out means preview: lines go to stdout.
func runPass(cfg config.Config, ds *internal.Dataset, colsSpec string, limit int, passLabel, out string) {
	format := pipeline.FormatFromConfig(cfg)
	sel, err := parseCols(colsSpec, ds, format)
	must(err)

	res, err := pipeline.Run(ds, format, sel, limit)
	must(err)

	if len(res.MissingPrefix) > 0 {
		log.Printf("warning: prefix columns absent from dataset, emitted empty: %s",
			strings.Join(res.MissingPrefix, ", "))
	}

	if out == "" {
		for _, line := range res.Lines {
			fmt.Println(line)
		}
	} else {
		newline := "\n"
		if cfg.CRLF {
			newline = "\r\n"
		}
		must(pipeline.WriteLines(res.Lines, out, newline))
		fmt.Printf("exported %d lines to %s\n", len(res.Lines), out)
	}

	if len(res.Rejected) > 0 {
		if err := pipeline.AppendRejectionLog(cfg.RejectLogPath, passLabel, res.Rejected); err != nil {
			log.Printf("warning: could not write rejection log: %v", err)
		}
		log.Printf("%d item(s) rejected with EAN > 13 digits (log: %s)", len(res.Rejected), cfg.RejectLogPath)
	}
}

// parseCols enables attribute columns from a comma separated spec of COL or
// COL=LABEL entries on top of the dataset's default selection.
func parseCols(spec string, ds *internal.Dataset, format pipeline.Format) (*pipeline.Selection, error) {
	sel := pipeline.SelectionFor(ds, format)
	if strings.TrimSpace(spec) == "" {
		return sel, nil
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, label, hasLabel := strings.Cut(part, "=")
		name = strings.ToUpper(strings.TrimSpace(name))
		opt, ok := sel.Get(name)
		if !ok {
			return nil, fmt.Errorf("column %s is not an optional attribute column", name)
		}
		opt.Include = true
		if hasLabel {
			opt.Label = strings.TrimSpace(label)
		}
		sel.Set(name, opt)
	}
	return sel, nil
}

func usage() {
	fmt.Println("usage: exportador <command>")
	fmt.Println("commands:")
	fmt.Println("  sheets --input=plan.xlsx")
	fmt.Println("  columns --input=plan.xlsx [--sheet=Plan1]")
	fmt.Println("  preview --input=plan.xlsx [--sheet=Plan1] [--cols=DEP=DEP,QTD_ESTOQUE_ATUAL=QTD] [--limit=10]")
	fmt.Println("  export --input=plan.xlsx --out=./out/contagem.txt [--sheet=...] [--cols=...]")
	fmt.Println("  query:preview [--cols=...] [--limit=10]")
	fmt.Println("  query:export --out=./out/contagem.txt [--cols=...]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
