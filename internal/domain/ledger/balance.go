// Package ledger contiene el motor de saldos del estoque: saldo por ítem, serie diaria
// acumulada con arrastre del último valor y filtro de movimientos por día local.
//
// Todas las funciones son puras: operan sobre una foto en memoria de ítems y transacciones,
// no hacen I/O y devuelven siempre el mismo resultado para la misma entrada.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ItemBalance es el ítem completo más su saldo actual.
type ItemBalance struct {
	Item    entity.Item
	Balance decimal.Decimal
}

// ComputeBalances reduce las transacciones al saldo actual de cada ítem.
// Saldo = suma de Amount de las transacciones del ítem; 0 si no tiene ninguna.
// El orden de items se conserva y ningún ítem se descarta. Las transacciones que
// referencian un ítem inexistente se ignoran sin error.
func ComputeBalances(items []entity.Item, txs []entity.Transaction) []ItemBalance {
	out := make([]ItemBalance, 0, len(items))
	if len(txs) == 0 {
		for _, it := range items {
			out = append(out, ItemBalance{Item: it, Balance: decimal.Zero})
		}
		return out
	}

	sums := make(map[string]decimal.Decimal, len(items))
	for _, tx := range txs {
		sums[tx.ItemID] = sums[tx.ItemID].Add(tx.Amount)
	}
	for _, it := range items {
		bal, ok := sums[it.ID]
		if !ok {
			bal = decimal.Zero
		}
		out = append(out, ItemBalance{Item: it, Balance: bal})
	}
	return out
}

// BalanceOf devuelve el saldo de un solo ítem.
func BalanceOf(itemID string, txs []entity.Transaction) decimal.Decimal {
	bal := decimal.Zero
	for _, tx := range txs {
		if tx.ItemID == itemID {
			bal = bal.Add(tx.Amount)
		}
	}
	return bal
}

// FilterBySector filtra la salida de ComputeBalances por sector. Sector vacío devuelve todo.
func FilterBySector(balances []ItemBalance, sector string) []ItemBalance {
	if sector == "" {
		return balances
	}
	out := make([]ItemBalance, 0, len(balances))
	for _, b := range balances {
		if b.Item.Sector == sector {
			out = append(out, b)
		}
	}
	return out
}
