package ledger

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// TransactionsOn devuelve las transacciones cuyo instante, convertido a loc, cae en day.
// La comparación se hace siempre después de convertir de zona: un registro guardado a las
// 01:30 UTC puede pertenecer al día anterior en America/Sao_Paulo.
// Conserva el orden de entrada; sin coincidencias devuelve un slice vacío.
func TransactionsOn(txs []entity.Transaction, day Date, loc *time.Location) []entity.Transaction {
	out := make([]entity.Transaction, 0)
	for _, tx := range txs {
		if DateOf(tx.Timestamp, loc) == day {
			out = append(out, tx)
		}
	}
	return out
}
