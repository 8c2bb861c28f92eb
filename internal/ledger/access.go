package ledger

import "cashbook-backend/internal/domain"

// IsOwner reports whether the session user owns the business.
func IsOwner(session domain.Session, business domain.Business) bool {
	return !session.IsZero() && session.UserID == business.UserID
}

// RequireOwner gates rename, delete, join-code rotation and member removal.
func RequireOwner(session domain.Session, business domain.Business) error {
	if !IsOwner(session, business) {
		return ErrNotOwner
	}
	return nil
}

// RequireMember succeeds for the owner and for any user listed in members.
func RequireMember(session domain.Session, business domain.Business, members []domain.Member) error {
	if IsOwner(session, business) {
		return nil
	}
	if session.IsZero() {
		return ErrNotMember
	}
	for _, m := range members {
		if m.UserID == session.UserID {
			return nil
		}
	}
	return ErrNotMember
}

// Classify builds the owned/shared view of a business for the session user.
func Classify(session domain.Session, business domain.Business, members []domain.Member) domain.BusinessAccess {
	if IsOwner(session, business) {
		return domain.BusinessAccess{Business: business, Kind: domain.AccessOwned}
	}
	return domain.BusinessAccess{
		Business:   business,
		Kind:       domain.AccessShared,
		OwnerEmail: ownerEmail(business, members),
	}
}

// ResolveMembership normalises an owned or shared record into the membership the aggregator consumes.
// Ownership is decided by comparing ids, never by the record's kind alone.
func ResolveMembership(session domain.Session, access domain.BusinessAccess, members []domain.Member) domain.Membership {
	m := domain.Membership{
		IsOwner: IsOwner(session, access.Business),
		Members: members,
	}
	switch {
	case access.OwnerEmail != "":
		m.OwnerEmail = access.OwnerEmail
	case m.IsOwner:
		m.OwnerEmail = session.Email
	default:
		m.OwnerEmail = ownerEmail(access.Business, members)
	}
	return m
}

func ownerEmail(business domain.Business, members []domain.Member) string {
	for _, m := range members {
		if m.UserID == business.UserID {
			return m.Email
		}
	}
	return ""
}
