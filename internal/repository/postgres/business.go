package postgres

import (
	"context"
	"database/sql"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"
)

const businessColumns = `id, user_id, name, currency, join_code, join_code_rotated_at, created_at`

type businessRepository struct {
	db *sql.DB
}

func NewBusinessRepository(db *sql.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner, b *domain.Business, extra ...any) error {
	dest := append([]any{&b.ID, &b.UserID, &b.Name, &b.Currency, &b.JoinCode, &b.JoinCodeRotatedAt, &b.CreatedAt}, extra...)
	return row.Scan(dest...)
}

func (r *businessRepository) Create(ctx context.Context, b *domain.Business) error {
	logger.EnterMethod("businessRepository.Create", "businessID", b.ID, "userID", b.UserID)

	if err := r.create(ctx, b); err != nil {
		logger.ExitMethodWithError("businessRepository.Create", err, "businessID", b.ID)
		return mapError(err)
	}

	logger.ExitMethod("businessRepository.Create", "businessID", b.ID)
	return nil
}

func (r *businessRepository) create(ctx context.Context, b *domain.Business) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO businesses (` + businessColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(ctx, query, b.ID, b.UserID, b.Name, b.Currency, b.JoinCode, b.JoinCodeRotatedAt, b.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO business_members (business_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.UserID, domain.MemberRoleOwner, b.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	b := &domain.Business{}
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	if err := scanBusiness(r.db.QueryRowContext(ctx, query, id), b); err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

// Update writes the mutable fields. The join code only changes through UpdateJoinCode.
func (r *businessRepository) Update(ctx context.Context, b *domain.Business) error {
	query := `UPDATE businesses SET name = $1, currency = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, b.Name, b.Currency, b.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *businessRepository) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("businessRepository.Delete", "businessID", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err == nil {
		err = expectAffected(res)
	}
	if err != nil {
		logger.ExitMethodWithError("businessRepository.Delete", err, "businessID", id)
		return mapError(err)
	}

	logger.ExitMethod("businessRepository.Delete", "businessID", id)
	return nil
}

func (r *businessRepository) ListForUser(ctx context.Context, userID string) ([]domain.BusinessAccess, error) {
	query := `SELECT b.id, b.user_id, b.name, b.currency, b.join_code, b.join_code_rotated_at, b.created_at,
	                 COALESCE(o.email, '')
	          FROM businesses b
	          JOIN business_members m ON m.business_id = b.id AND m.user_id = $1
	          LEFT JOIN users o ON o.id = b.user_id
	          ORDER BY b.created_at DESC, b.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BusinessAccess
	for rows.Next() {
		var a domain.BusinessAccess
		var ownerEmail string
		if err := scanBusiness(rows, &a.Business, &ownerEmail); err != nil {
			return nil, err
		}
		if a.Business.UserID == userID {
			a.Kind = domain.AccessOwned
		} else {
			a.Kind = domain.AccessShared
			a.OwnerEmail = ownerEmail
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *businessRepository) GetByJoinCode(ctx context.Context, code string) (*domain.Business, error) {
	b := &domain.Business{}
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE join_code = $1`
	if err := scanBusiness(r.db.QueryRowContext(ctx, query, code), b); err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *businessRepository) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM businesses WHERE join_code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *businessRepository) UpdateJoinCode(ctx context.Context, businessID, code string, rotatedAt int64) error {
	logger.EnterMethod("businessRepository.UpdateJoinCode", "businessID", businessID)

	query := `UPDATE businesses SET join_code = $1, join_code_rotated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, code, rotatedAt, businessID)
	if err == nil {
		err = expectAffected(res)
	}
	if err != nil {
		logger.ExitMethodWithError("businessRepository.UpdateJoinCode", err, "businessID", businessID)
		return mapError(err)
	}

	logger.ExitMethod("businessRepository.UpdateJoinCode", "businessID", businessID)
	return nil
}

func (r *businessRepository) ListJoinCodesRotatedBefore(ctx context.Context, before int64) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE join_code_rotated_at < $1 ORDER BY join_code_rotated_at`
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := scanBusiness(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
