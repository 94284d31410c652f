// Comando estoque: consultas y reportes del estoque desde la terminal.
//
//	estoque saldo [-sector Impressão]
//	estoque relatorio [-date 2025-03-10] [-o relatorio.pdf]
//	estoque serie [-item 12] [-o saldo.xlsx]
package main

import (
	"context"
	"flag"
	"os"
	"path"
	_ "time/tzdata"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

var commands = []subcommands.Command{
	&saldoCmd{},
	&relatorioCmd{},
	&serieCmd{},
}
