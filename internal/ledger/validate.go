package ledger

import (
	"time"

	"cashbook-backend/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	momentLayout = DateLayout + " " + TimeLayout
)

// Validate reports whether tx can be ordered and summed. Amount must be a non-negative magnitude,
// Direction one of IN/OUT, and Date+Time a valid timestamp written exactly as YYYY-MM-DD and HH:mm.
func Validate(tx domain.Transaction) error {
	_, err := moment(tx)
	return err
}

// moment validates tx and returns its date and time combined into a single sortable instant.
// Dates carry no zone, so they are read as UTC which keeps the ordering identical to wall-clock order.
func moment(tx domain.Transaction) (time.Time, error) {
	switch tx.Direction {
	case domain.DirectionIn, domain.DirectionOut:
	default:
		return time.Time{}, malformed(tx, "unknown direction %q", tx.Direction)
	}
	if tx.Amount.IsNegative() {
		return time.Time{}, malformed(tx, "amount %s is negative", tx.Amount.String())
	}
	at, err := time.ParseInLocation(momentLayout, tx.Date+" "+tx.Time, time.UTC)
	if err != nil {
		return time.Time{}, malformed(tx, "invalid date/time %q %q", tx.Date, tx.Time)
	}
	// time accepts "9:00" for 15:04; stored fields must also sort as strings.
	if at.Format(DateLayout) != tx.Date || at.Format(TimeLayout) != tx.Time {
		return time.Time{}, malformed(tx, "date/time %q %q not in YYYY-MM-DD HH:mm form", tx.Date, tx.Time)
	}
	return at, nil
}
