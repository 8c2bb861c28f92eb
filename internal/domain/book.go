package domain

import "github.com/shopspring/decimal"

type Book struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"created_at"`
}

type BookSummary struct {
	Book
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
}

// BookLedger is a book summary together with its running-balance entries, most recent first.
type BookLedger struct {
	BookSummary
	Entries []BalancedTransaction `json:"entries"`
}
