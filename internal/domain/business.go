package domain

import "github.com/shopspring/decimal"

type Business struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"` // owner
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	JoinCode          string `json:"join_code,omitempty"`
	JoinCodeRotatedAt int64  `json:"join_code_rotated_at"`
	CreatedAt         int64  `json:"created_at"`
}

type AccessKind string

const (
	AccessOwned  AccessKind = "OWNED"
	AccessShared AccessKind = "SHARED"
)

// BusinessAccess is a business as seen by one user: either owned, or shared with them by OwnerEmail.
type BusinessAccess struct {
	Business   Business
	Kind       AccessKind
	OwnerEmail string // set only for AccessShared
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "OWNER"
	MemberRoleMember MemberRole = "MEMBER"
)

type Member struct {
	BusinessID string     `json:"business_id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       MemberRole `json:"role"`
	JoinedAt   int64      `json:"joined_at"`
}

type Membership struct {
	IsOwner    bool
	Members    []Member
	OwnerEmail string
}

type BusinessSummary struct {
	Business
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Balance    decimal.Decimal `json:"balance"`
	BookCount  int             `json:"book_count"`
	Books      []BookSummary   `json:"books"`
	IsShared   bool            `json:"is_shared"`
	OwnerEmail string          `json:"owner_email,omitempty"`
	Members    []Member        `json:"members,omitempty"`
}
