package http

import (
	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/service"

	"github.com/shopspring/decimal"
)

type createBusinessRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type updateBusinessRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
}

type joinBusinessRequest struct {
	Code string `json:"code"`
}

type bookRequest struct {
	Name string `json:"name"`
}

// transactionRequest accepts the amount either as a JSON number or a decimal string.
type transactionRequest struct {
	Amount        decimal.Decimal  `json:"amount"`
	Direction     domain.Direction `json:"direction"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Note          string           `json:"note"`
	PartyName     *string          `json:"party_name"`
	Category      *string          `json:"category"`
	AttachmentURL *string          `json:"attachment_url"`
}

func (r transactionRequest) toInput() service.TransactionInput {
	return service.TransactionInput{
		Amount:        r.Amount,
		Direction:     r.Direction,
		Date:          r.Date,
		Time:          r.Time,
		Note:          r.Note,
		PartyName:     r.PartyName,
		Category:      r.Category,
		AttachmentURL: r.AttachmentURL,
	}
}

type businessListResponse struct {
	Businesses []domain.BusinessSummary `json:"businesses"`
}

type memberListResponse struct {
	Members []domain.Member `json:"members"`
}

type joinCodeResponse struct {
	JoinCode          string `json:"join_code"`
	JoinCodeRotatedAt int64  `json:"join_code_rotated_at"`
}
