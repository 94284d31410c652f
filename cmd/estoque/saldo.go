package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

type saldoCmd struct {
	sector string
	plain  bool
}

func (*saldoCmd) Name() string     { return "saldo" }
func (*saldoCmd) Synopsis() string { return "muestra el saldo actual de cada ítem" }
func (*saldoCmd) Usage() string {
	return `saldo [-sector <setor>] [-plain]

  Lista id, nombre, unidad, sector y saldo de cada ítem como tabla.
`
}

func (c *saldoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sector, "sector", "", "Filtrar por sector")
	f.BoolVar(&c.plain, "plain", false, "Imprimir el markdown sin formato de terminal")
}

func (c *saldoCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer e.Close()

	balances, err := e.stock.Balances(ctx, c.sector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error leyendo saldos: %v\n", err)
		return subcommands.ExitFailure
	}

	md := balancesMarkdown(balances)
	if c.plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formateando tabla: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}

// balancesMarkdown tabla markdown de saldos. Los '|' del contenido se escapan.
func balancesMarkdown(balances []dto.ItemBalanceDTO) string {
	var b strings.Builder
	b.WriteString("| Item | Unidade | Setor | Saldo |\n")
	b.WriteString("|------|---------|-------|------:|\n")
	for _, it := range balances {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", mdCell(it.Name), mdCell(it.Unit), mdCell(it.Sector), it.Balance.String())
	}
	if len(balances) == 0 {
		b.WriteString("\n_Nenhum item encontrado._\n")
	}
	return b.String()
}

func mdCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
