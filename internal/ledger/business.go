package ledger

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"cashbook-backend/internal/domain"
)

// AggregateBusiness sums book summaries into a business summary. Books are attached newest first
// by creation time; books created at the same instant keep their input order.
func AggregateBusiness(business domain.Business, books []domain.BookSummary, membership domain.Membership) domain.BusinessSummary {
	sorted := slices.Clone(books)
	if sorted == nil {
		sorted = []domain.BookSummary{}
	}
	slices.SortStableFunc(sorted, func(a, b domain.BookSummary) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})

	totalIn, totalOut := decimal.Zero, decimal.Zero
	for _, b := range sorted {
		totalIn = totalIn.Add(b.TotalIn)
		totalOut = totalOut.Add(b.TotalOut)
	}

	summary := domain.BusinessSummary{
		Business:  business,
		TotalIn:   totalIn,
		TotalOut:  totalOut,
		Balance:   totalIn.Sub(totalOut),
		BookCount: len(sorted),
		Books:     sorted,
		Members:   membership.Members,
	}
	if !membership.IsOwner {
		summary.IsShared = true
		summary.OwnerEmail = membership.OwnerEmail
		// the join code grants access; only the owner hands it out
		summary.JoinCode = ""
	}
	return summary
}
