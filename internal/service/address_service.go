package service

import (
	"context"
	"fmt"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"

	"github.com/rs/zerolog"
)

// AddressServiceImpl implements ports.AddressService.
type AddressServiceImpl struct {
	wallet       ports.WalletClient
	repo         ports.AddressRepository
	accountIndex uint64
	log          zerolog.Logger
}

// NewAddressService creates a new AddressServiceImpl. accountIndex is the
// account under which new subaddresses are allocated.
func NewAddressService(wallet ports.WalletClient, repo ports.AddressRepository, accountIndex uint64, log zerolog.Logger) *AddressServiceImpl {
	return &AddressServiceImpl{
		wallet:       wallet,
		repo:         repo,
		accountIndex: accountIndex,
		log:          log,
	}
}

// Create allocates a new subaddress from the wallet and persists the mapping
// atomically with the RPC-returned address and index.
func (s *AddressServiceImpl) Create(ctx context.Context, userID int64, label *string) (*domain.AddressRecord, error) {
	if userID == 0 {
		return nil, apperror.Validation("user_id is required")
	}

	labelStr := ""
	if label != nil {
		labelStr = *label
	}

	address, addressIndex, err := s.wallet.CreateAddress(ctx, s.accountIndex, labelStr)
	if err != nil {
		return nil, err
	}

	rec := &domain.AddressRecord{
		UserID:       userID,
		Address:      address,
		Label:        label,
		AccountIndex: s.accountIndex,
		AddressIndex: addressIndex,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if _, ok := err.(*apperror.AppError); ok {
			return nil, err
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist address mapping: %w", err))
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("address", address).
		Uint64("account_index", s.accountIndex).
		Uint64("address_index", addressIndex).
		Msg("subaddress allocated")

	return rec, nil
}

// List returns ledger records, optionally filtered by user.
func (s *AddressServiceImpl) List(ctx context.Context, userID *int64) ([]domain.AddressRecord, error) {
	records, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return records, nil
}

// GetByLabel returns the ledger record for a label.
func (s *AddressServiceImpl) GetByLabel(ctx context.Context, label string) (*domain.AddressRecord, error) {
	rec, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rec == nil {
		return nil, apperror.ErrNotFound("label")
	}
	return rec, nil
}

// LookupByAddress resolves an address to its label and coordinates. The
// ledger is consulted first; an address the ledger does not know (allocated
// outside this service) falls back to the wallet, resolving the (major,
// minor) coordinates and then the label recorded there.
func (s *AddressServiceImpl) LookupByAddress(ctx context.Context, address string) (*ports.AddressLookup, error) {
	rec, err := s.repo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rec != nil {
		label := ""
		if rec.Label != nil {
			label = *rec.Label
		}
		return &ports.AddressLookup{
			Address:      rec.Address,
			Label:        label,
			AccountIndex: rec.AccountIndex,
			AddressIndex: rec.AddressIndex,
		}, nil
	}

	major, minor, err := s.wallet.GetAddressIndex(ctx, address)
	if err != nil {
		return nil, err
	}

	infos, err := s.wallet.GetAddress(ctx, major, []uint64{minor})
	if err != nil {
		return nil, err
	}
	label := ""
	if len(infos) > 0 {
		label = infos[0].Label
	}

	return &ports.AddressLookup{
		Address:      address,
		Label:        label,
		AccountIndex: major,
		AddressIndex: minor,
	}, nil
}
