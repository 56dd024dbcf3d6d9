package ports

import (
	"context"

	"monero-wallet-manager/internal/core/domain"
)

// AddressRepository defines persistence operations for the address ledger.
// The store's unique constraint on address is the only uniqueness guard; a
// duplicate insert surfaces as apperror.ErrAddressExists.
type AddressRepository interface {
	// Create inserts a record and fills its assigned ID and CreatedAt.
	Create(ctx context.Context, rec *domain.AddressRecord) error
	// List returns all records, optionally filtered by user.
	List(ctx context.Context, userID *int64) ([]domain.AddressRecord, error)
	GetByLabel(ctx context.Context, label string) (*domain.AddressRecord, error)
	GetByAddress(ctx context.Context, address string) (*domain.AddressRecord, error)
}
