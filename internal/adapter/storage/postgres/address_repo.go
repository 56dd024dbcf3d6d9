package postgres

import (
	"context"
	"errors"
	"fmt"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// AddressRepo implements ports.AddressRepository.
type AddressRepo struct {
	pool Pool
}

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

// Create inserts a new ledger record and fills its assigned id and creation
// timestamp. A duplicate address maps to apperror.ErrAddressExists.
func (r *AddressRepo) Create(ctx context.Context, rec *domain.AddressRecord) error {
	query := `INSERT INTO address_map (user_id, address, label, account_index, address_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		rec.UserID, rec.Address, rec.Label, rec.AccountIndex, rec.AddressIndex,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.ErrAddressExists(rec.Address)
		}
		return fmt.Errorf("insert address record: %w", err)
	}
	return nil
}

// List returns ledger records, optionally filtered by user.
func (r *AddressRepo) List(ctx context.Context, userID *int64) ([]domain.AddressRecord, error) {
	query := `SELECT id, user_id, address, label, account_index, address_index, created_at
		FROM address_map`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list address records: %w", err)
	}
	defer rows.Close()

	records := []domain.AddressRecord{}
	for rows.Next() {
		var rec domain.AddressRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Address, &rec.Label,
			&rec.AccountIndex, &rec.AddressIndex, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list address records: %w", err)
	}
	return records, nil
}

// GetByLabel fetches the record carrying a label, or nil when absent.
func (r *AddressRepo) GetByLabel(ctx context.Context, label string) (*domain.AddressRecord, error) {
	query := `SELECT id, user_id, address, label, account_index, address_index, created_at
		FROM address_map WHERE label = $1`

	rec := &domain.AddressRecord{}
	err := r.pool.QueryRow(ctx, query, label).Scan(
		&rec.ID, &rec.UserID, &rec.Address, &rec.Label,
		&rec.AccountIndex, &rec.AddressIndex, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address record by label: %w", err)
	}
	return rec, nil
}

// GetByAddress fetches the record for a subaddress, or nil when absent.
func (r *AddressRepo) GetByAddress(ctx context.Context, address string) (*domain.AddressRecord, error) {
	query := `SELECT id, user_id, address, label, account_index, address_index, created_at
		FROM address_map WHERE address = $1`

	rec := &domain.AddressRecord{}
	err := r.pool.QueryRow(ctx, query, address).Scan(
		&rec.ID, &rec.UserID, &rec.Address, &rec.Label,
		&rec.AccountIndex, &rec.AddressIndex, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address record by address: %w", err)
	}
	return rec, nil
}
