package postgres

import (
	"context"
	"database/sql"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Add(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO business_members (business_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, m.BusinessID, m.UserID, m.Role, m.JoinedAt)
	return mapError(err)
}

func (r *memberRepository) Get(ctx context.Context, businessID, userID string) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT m.business_id, m.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), m.role, m.joined_at
	          FROM business_members m LEFT JOIN users u ON u.id = m.user_id
	          WHERE m.business_id = $1 AND m.user_id = $2`
	err := r.db.QueryRowContext(ctx, query, businessID, userID).Scan(&m.BusinessID, &m.UserID, &m.Name, &m.Email, &m.Role, &m.JoinedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *memberRepository) Remove(ctx context.Context, businessID, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM business_members WHERE business_id = $1 AND user_id = $2`, businessID, userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *memberRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Member, error) {
	query := `SELECT m.business_id, m.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), m.role, m.joined_at
	          FROM business_members m LEFT JOIN users u ON u.id = m.user_id
	          WHERE m.business_id = $1
	          ORDER BY m.joined_at, m.user_id`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.BusinessID, &m.UserID, &m.Name, &m.Email, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
