package ledger

import (
	"errors"
	"fmt"

	"cashbook-backend/internal/domain"
)

var (
	// ErrMalformedInput is returned, wrapped with the offending transaction id, when a transaction
	// cannot take part in balance computation.
	ErrMalformedInput = errors.New("malformed input")
	ErrNotOwner       = errors.New("only the business owner can perform this action")
	ErrNotMember      = errors.New("user is not a member of this business")
)

func malformed(tx domain.Transaction, format string, args ...any) error {
	return fmt.Errorf("transaction %s: %w: %s", tx.ID, ErrMalformedInput, fmt.Sprintf(format, args...))
}
