package service

import (
	"context"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"

	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalProcessor. It turns one
// queued withdrawal instruction into a transfer_split call. Nothing is
// persisted; the outcome is recorded as a structured log event.
type WithdrawalServiceImpl struct {
	wallet ports.WalletClient
	log    zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(wallet ports.WalletClient, log zerolog.Logger) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{wallet: wallet, log: log}
}

var _ ports.WithdrawalProcessor = (*WithdrawalServiceImpl)(nil)

// Process executes one withdrawal. Required fields are checked before any
// RPC call. Unlike the synchronous transfer path, an unresolvable
// from_address degrades instead of failing: the binding is dropped with a
// warning and the wallet picks the source itself.
func (s *WithdrawalServiceImpl) Process(ctx context.Context, msg *domain.WithdrawalMessage) ([]string, error) {
	if msg.ToAddress == "" || msg.AmountXMR == nil {
		return nil, apperror.ErrMessageFormat("withdraw message requires to_address and amount_xmr")
	}
	if *msg.AmountXMR <= 0 {
		return nil, apperror.ErrMessageFormat("withdraw message amount_xmr must be positive")
	}

	params := ports.TransferParams{
		Destinations: []ports.Destination{{
			Amount:  domain.XMRToAtomic(*msg.AmountXMR),
			Address: msg.ToAddress,
		}},
		Options: ports.TransferOptions{
			Priority:   msg.Priority,
			RingSize:   msg.RingSize,
			DoNotRelay: msg.DoNotRelay,
			PaymentID:  msg.PaymentID,
			UnlockTime: msg.UnlockTime,
		},
	}

	if msg.FromAddress != "" {
		major, minor, err := s.wallet.GetAddressIndex(ctx, msg.FromAddress)
		if err != nil {
			s.log.Warn().Err(err).
				Str("from_address", msg.FromAddress).
				Msg("cannot resolve from_address, proceeding without source binding")
		} else {
			params.AccountIndex = &major
			params.SubaddrIndices = []uint64{minor}
		}
	}

	res, err := s.wallet.TransferSplit(ctx, params)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("to_address", msg.ToAddress).
		Float64("amount_xmr", *msg.AmountXMR).
		Strs("tx_hashes", res.TxHashList).
		Msg("withdrawal executed")

	return res.TxHashList, nil
}
