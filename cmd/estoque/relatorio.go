package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

type relatorioCmd struct {
	date string
	out  string
}

func (*relatorioCmd) Name() string     { return "relatorio" }
func (*relatorioCmd) Synopsis() string { return "genera el reporte diario en PDF" }
func (*relatorioCmd) Usage() string {
	return `relatorio [-date YYYY-MM-DD] [-o <archivo.pdf>]

  Movimentações del día y saldo actual por sector. Sin -date usa el día de hoy
  en la zona del estoque; sin -o escribe relatorio_estoque_<fecha>.pdf.
`
}

func (c *relatorioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Día del reporte (YYYY-MM-DD)")
	f.StringVar(&c.out, "o", "", "Archivo de salida")
}

func (c *relatorioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var day ledger.Date
	if c.date != "" {
		d, err := ledger.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -date inválido: %v\n", err)
			return subcommands.ExitUsageError
		}
		day = d
	}

	e, err := openEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer e.Close()

	if day.IsZero() {
		day = e.report.Today()
	}
	doc, filename, err := e.report.Render(ctx, day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generando reporte: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.out != "" {
		filename = c.out
	}
	if err := os.WriteFile(filename, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error escribiendo %s: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Println(filename)
	return subcommands.ExitSuccess
}
