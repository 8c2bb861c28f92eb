package service

import (
	"errors"

	"cashbook-backend/internal/ledger"
)

var (
	ErrInvalidCode   = errors.New("invalid code")
	ErrAlreadyMember = errors.New("user is already a member of this business")
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("no authenticated user")

	ErrNotOwner  = ledger.ErrNotOwner
	ErrNotMember = ledger.ErrNotMember
)
