package ledger

import (
	"github.com/shopspring/decimal"

	"cashbook-backend/internal/domain"
)

// Totals sums IN and OUT amounts separately. It does not sort and does not depend on
// ComputeRunningBalances, but it rejects the same malformed input.
func Totals(txs []domain.Transaction) (totalIn, totalOut decimal.Decimal, err error) {
	totalIn, totalOut = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if err := Validate(tx); err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if tx.Direction == domain.DirectionIn {
			totalIn = totalIn.Add(tx.Amount)
		} else {
			totalOut = totalOut.Add(tx.Amount)
		}
	}
	return totalIn, totalOut, nil
}

// AggregateBook reduces a book's transactions to its totals.
func AggregateBook(book domain.Book, txs []domain.Transaction) (domain.BookSummary, error) {
	for _, tx := range txs {
		if tx.BookID != book.ID {
			return domain.BookSummary{}, malformed(tx, "belongs to book %s, not %s", tx.BookID, book.ID)
		}
	}

	totalIn, totalOut, err := Totals(txs)
	if err != nil {
		return domain.BookSummary{}, err
	}
	return domain.BookSummary{
		Book:     book,
		TotalIn:  totalIn,
		TotalOut: totalOut,
		Balance:  totalIn.Sub(totalOut),
	}, nil
}

// BuildBookLedger returns the book summary together with its running-balance entries.
func BuildBookLedger(book domain.Book, txs []domain.Transaction) (domain.BookLedger, error) {
	summary, err := AggregateBook(book, txs)
	if err != nil {
		return domain.BookLedger{}, err
	}
	entries, err := ComputeRunningBalances(txs)
	if err != nil {
		return domain.BookLedger{}, err
	}
	return domain.BookLedger{BookSummary: summary, Entries: entries}, nil
}
