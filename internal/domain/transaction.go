package domain

import "github.com/shopspring/decimal"

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Transaction is a single dated cash movement inside a book.
// Amount is always a non-negative magnitude; Direction carries the sign.
type Transaction struct {
	ID            string          `json:"id"`
	BookID        string          `json:"book_id"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     Direction       `json:"direction"`
	Date          string          `json:"date"` // Format: 'YYYY-MM-DD'
	Time          string          `json:"time"` // Format: 'HH:mm'
	Note          string          `json:"note"`
	PartyName     *string         `json:"party_name,omitempty"`
	Category      *string         `json:"category,omitempty"`
	AttachmentURL *string         `json:"attachment_url,omitempty"`
	CreatedAt     int64           `json:"created_at"` // epoch milliseconds, immutable
}

type BalancedTransaction struct {
	Transaction
	RunningBalance decimal.Decimal `json:"running_balance"`
}
