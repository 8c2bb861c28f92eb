package ledger

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cashbook-backend/internal/domain"
)

func tx(id string, dir domain.Direction, amount, date, clock string) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		BookID:    "book-1",
		Amount:    decimal.RequireFromString(amount),
		Direction: dir,
		Date:      date,
		Time:      clock,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// randomTransactions draws from a narrow date/time range so identical timestamps are common.
// IDs are unique, which makes (date, time, created_at, id) a total order.
func randomTransactions(r *rand.Rand, bookID string, n int) []domain.Transaction {
	txs := make([]domain.Transaction, n)
	for i := range txs {
		dir := domain.DirectionIn
		if r.IntN(2) == 0 {
			dir = domain.DirectionOut
		}
		txs[i] = domain.Transaction{
			ID:        fmt.Sprintf("tx-%03d", i),
			BookID:    bookID,
			Amount:    decimal.New(r.Int64N(1_000_000), -2),
			Direction: dir,
			Date:      fmt.Sprintf("2024-03-%02d", 1+r.IntN(3)),
			Time:      fmt.Sprintf("%02d:%02d", 8+r.IntN(2), 15*r.IntN(2)),
			CreatedAt: 1_700_000_000_000 + int64(r.IntN(5)),
		}
	}
	return txs
}

func sumByDirection(entries []domain.BalancedTransaction) (in, out decimal.Decimal) {
	in, out = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.Direction == domain.DirectionIn {
			in = in.Add(e.Amount)
		} else {
			out = out.Add(e.Amount)
		}
	}
	return in, out
}
