package ledger

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"cashbook-backend/internal/domain"
)

type keyed struct {
	tx domain.Transaction
	at time.Time
}

// ComputeRunningBalances orders a book's transactions chronologically, annotates each with the
// cumulative balance up to and including it, and returns them most recent first.
//
// Transactions sharing the same date and time are ordered by CreatedAt, then by ID, so the result
// never depends on the order the caller fetched them in. The input slice is not modified.
// Any malformed transaction rejects the whole call with ErrMalformedInput.
func ComputeRunningBalances(txs []domain.Transaction) ([]domain.BalancedTransaction, error) {
	ordered, err := chronological(txs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BalancedTransaction, len(ordered))
	running := decimal.Zero
	for i, k := range ordered {
		running = running.Add(signed(k.tx))
		out[len(ordered)-1-i] = domain.BalancedTransaction{
			Transaction:    k.tx,
			RunningBalance: running,
		}
	}
	return out, nil
}

func chronological(txs []domain.Transaction) ([]keyed, error) {
	ordered := make([]keyed, 0, len(txs))
	for _, tx := range txs {
		at, err := moment(tx)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, keyed{tx: tx, at: at})
	}

	slices.SortStableFunc(ordered, func(a, b keyed) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		if c := cmp.Compare(a.tx.CreatedAt, b.tx.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.tx.ID, b.tx.ID)
	})
	return ordered, nil
}

func signed(tx domain.Transaction) decimal.Decimal {
	if tx.Direction == domain.DirectionOut {
		return tx.Amount.Neg()
	}
	return tx.Amount
}
