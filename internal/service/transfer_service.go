package service

import (
	"context"
	"fmt"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"

	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	wallet ports.WalletClient
	log    zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(wallet ports.WalletClient, log zerolog.Logger) *TransferServiceImpl {
	return &TransferServiceImpl{wallet: wallet, log: log}
}

// PrimaryAddress returns the wallet's (0,0) address.
func (s *TransferServiceImpl) PrimaryAddress(ctx context.Context) (*ports.PrimaryAddress, error) {
	infos, err := s.wallet.GetAddress(ctx, 0, []uint64{0})
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, apperror.ErrWalletRPC(0, "wallet returned no primary address")
	}
	return &ports.PrimaryAddress{
		AccountIndex: 0,
		AddressIndex: 0,
		Address:      infos[0].Address,
	}, nil
}

// Transfer executes an immediate single-transaction transfer. An unresolvable
// from_address is surfaced to the caller; the synchronous path never degrades
// to letting the wallet pick a source silently.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	params, err := s.buildParams(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.wallet.Transfer(ctx, *params)
}

// TransferSplit executes a transfer the wallet may split across transactions.
func (s *TransferServiceImpl) TransferSplit(ctx context.Context, req ports.TransferRequest) (*ports.TransferSplitResult, error) {
	params, err := s.buildParams(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.wallet.TransferSplit(ctx, *params)
}

func (s *TransferServiceImpl) buildParams(ctx context.Context, req ports.TransferRequest) (*ports.TransferParams, error) {
	if req.ToAddress == "" || req.AmountXMR == nil {
		return nil, apperror.Validation("to_address and amount_xmr are required")
	}
	// Rejected here: a negative amount would wrap to a huge atomic value.
	if *req.AmountXMR <= 0 {
		return nil, apperror.Validation("amount_xmr must be positive")
	}

	params := &ports.TransferParams{
		Destinations: []ports.Destination{{
			Amount:  domain.XMRToAtomic(*req.AmountXMR),
			Address: req.ToAddress,
		}},
		Options: req.Options,
	}

	if req.FromAddress != "" {
		major, minor, err := s.wallet.GetAddressIndex(ctx, req.FromAddress)
		if err != nil {
			return nil, apperror.Wrap("VAL_001",
				fmt.Sprintf("failed to resolve from_address %s", req.FromAddress),
				400, err)
		}
		params.AccountIndex = &major
		params.SubaddrIndices = []uint64{minor}
	}

	return params, nil
}

// SweepAll consolidates all unlocked funds of the resolved source subaddress.
// A missing destination falls back to the wallet's primary address.
func (s *TransferServiceImpl) SweepAll(ctx context.Context, req ports.SweepRequest) (*ports.SweepResponse, error) {
	if req.FromAddress == "" {
		return nil, apperror.Validation("from_address is required")
	}

	major, minor, err := s.wallet.GetAddressIndex(ctx, req.FromAddress)
	if err != nil {
		return nil, apperror.Wrap("VAL_001",
			fmt.Sprintf("failed to resolve from_address %s", req.FromAddress),
			400, err)
	}

	toAddress := req.ToAddress
	if toAddress == "" {
		primary, err := s.PrimaryAddress(ctx)
		if err != nil {
			return nil, err
		}
		toAddress = primary.Address
	}

	res, err := s.wallet.SweepAll(ctx, ports.SweepParams{
		AccountIndex:   major,
		SubaddrIndices: []uint64{minor},
		Address:        toAddress,
		Options:        req.Options,
	})
	if err != nil {
		return nil, err
	}

	var totalAtomic uint64
	for _, a := range res.AmountList {
		totalAtomic += a
	}

	s.log.Info().
		Str("from_address", req.FromAddress).
		Str("to_address", toAddress).
		Strs("tx_hashes", res.TxHashList).
		Uint64("total_atomic", totalAtomic).
		Msg("sweep executed")

	return &ports.SweepResponse{
		TxHashList:       res.TxHashList,
		AmountListAtomic: res.AmountList,
		FeeListAtomic:    res.FeeList,
		TotalXMR:         domain.AtomicToXMR(totalAtomic),
	}, nil
}

// BalanceByAddress resolves an address to its subaddress coordinates and
// reports its balance. When the balance response carries no matching
// per_subaddress entry, the account-level totals are used instead.
func (s *TransferServiceImpl) BalanceByAddress(ctx context.Context, address string) (*ports.BalanceInfo, error) {
	major, minor, err := s.wallet.GetAddressIndex(ctx, address)
	if err != nil {
		return nil, err
	}

	res, err := s.wallet.GetBalance(ctx, major, []uint64{minor})
	if err != nil {
		return nil, err
	}

	balance := res.Balance
	unlocked := res.UnlockedBalance
	for _, p := range res.PerSubaddress {
		if p.AddressIndex == minor {
			balance = p.Balance
			unlocked = p.UnlockedBalance
			break
		}
	}

	return &ports.BalanceInfo{
		Address:               address,
		AccountIndex:          major,
		AddressIndex:          minor,
		BalanceAtomic:         balance,
		UnlockedBalanceAtomic: unlocked,
		BalanceXMR:            domain.AtomicToXMR(balance),
		UnlockedBalanceXMR:    domain.AtomicToXMR(unlocked),
	}, nil
}
