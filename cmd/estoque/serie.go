package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type serieCmd struct {
	item string
	out  string
}

func (*serieCmd) Name() string     { return "serie" }
func (*serieCmd) Synopsis() string { return "exporta la serie diaria de saldos a Excel" }
func (*serieCmd) Usage() string {
	return `serie [-item <id>] [-o <archivo.xlsx>]

  Una fila por día desde el primer hasta el último movimiento, una columna por ítem.
`
}

func (c *serieCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Restringir a un ítem")
	f.StringVar(&c.out, "o", "saldo_diario.xlsx", "Archivo de salida")
}

func (c *serieCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer e.Close()

	data, err := e.series.ExportXLSX(ctx, c.item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exportando serie: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error escribiendo %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Println(c.out)
	return subcommands.ExitSuccess
}
