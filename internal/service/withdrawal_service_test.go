package service

import (
	"context"
	"errors"
	"testing"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/internal/core/ports/mocks"
	"monero-wallet-manager/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint64) *uint64 { return &v }

func TestWithdrawalService_Process_MissingFieldsFailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletClient(ctrl)
	svc := NewWithdrawalService(wallet, zerolog.Nop())

	cases := []struct {
		name string
		msg  *domain.WithdrawalMessage
	}{
		{"missing to_address", &domain.WithdrawalMessage{Type: domain.MessageTypeWithdraw, AmountXMR: floatPtr(1)}},
		{"missing amount_xmr", &domain.WithdrawalMessage{Type: domain.MessageTypeWithdraw, ToAddress: "9xA"}},
		{"negative amount_xmr", &domain.WithdrawalMessage{Type: domain.MessageTypeWithdraw, ToAddress: "9xA", AmountXMR: floatPtr(-1.5)}},
		{"zero amount_xmr", &domain.WithdrawalMessage{Type: domain.MessageTypeWithdraw, ToAddress: "9xA", AmountXMR: floatPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Process(context.Background(), tc.msg)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "QUEUE_001", appErr.Code)
		})
	}
}

func TestWithdrawalService_Process_ResolvesSourceAndConverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletClient(ctrl)
	wallet.EXPECT().GetAddressIndex(gomock.Any(), "source-addr").Return(uint64(0), uint64(3), nil)
	wallet.EXPECT().TransferSplit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.TransferParams) (*ports.TransferSplitResult, error) {
			require.Len(t, params.Destinations, 1)
			assert.Equal(t, "9xA", params.Destinations[0].Address)
			assert.Equal(t, uint64(1_500_000_000_000), params.Destinations[0].Amount)
			require.NotNil(t, params.AccountIndex)
			assert.Equal(t, uint64(0), *params.AccountIndex)
			assert.Equal(t, []uint64{3}, params.SubaddrIndices)
			return &ports.TransferSplitResult{TxHashList: []string{"txa", "txb"}}, nil
		})

	svc := NewWithdrawalService(wallet, zerolog.Nop())
	hashes, err := svc.Process(context.Background(), &domain.WithdrawalMessage{
		Type:        domain.MessageTypeWithdraw,
		ToAddress:   "9xA",
		AmountXMR:   floatPtr(1.5),
		FromAddress: "source-addr",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"txa", "txb"}, hashes)
}

func TestWithdrawalService_Process_UnresolvableSourceDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletClient(ctrl)
	wallet.EXPECT().GetAddressIndex(gomock.Any(), "unknown-addr").
		Return(uint64(0), uint64(0), apperror.ErrWalletRPC(-2, "address not in wallet"))
	wallet.EXPECT().TransferSplit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.TransferParams) (*ports.TransferSplitResult, error) {
			// Source binding is dropped, the wallet picks the source.
			assert.Nil(t, params.AccountIndex)
			assert.Empty(t, params.SubaddrIndices)
			return &ports.TransferSplitResult{TxHashList: []string{"txa"}}, nil
		})

	svc := NewWithdrawalService(wallet, zerolog.Nop())
	hashes, err := svc.Process(context.Background(), &domain.WithdrawalMessage{
		Type:        domain.MessageTypeWithdraw,
		ToAddress:   "9xA",
		AmountXMR:   floatPtr(2),
		FromAddress: "unknown-addr",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"txa"}, hashes)
}

func TestWithdrawalService_Process_ForwardsPassthroughOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doNotRelay := true
	wallet := mocks.NewMockWalletClient(ctrl)
	wallet.EXPECT().TransferSplit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.TransferParams) (*ports.TransferSplitResult, error) {
			require.NotNil(t, params.Options.Priority)
			assert.Equal(t, uint64(2), *params.Options.Priority)
			require.NotNil(t, params.Options.RingSize)
			assert.Equal(t, uint64(16), *params.Options.RingSize)
			require.NotNil(t, params.Options.DoNotRelay)
			assert.True(t, *params.Options.DoNotRelay)
			return &ports.TransferSplitResult{TxHashList: []string{"txa"}}, nil
		})

	svc := NewWithdrawalService(wallet, zerolog.Nop())
	_, err := svc.Process(context.Background(), &domain.WithdrawalMessage{
		Type:       domain.MessageTypeWithdraw,
		ToAddress:  "9xA",
		AmountXMR:  floatPtr(0.5),
		Priority:   uintPtr(2),
		RingSize:   uintPtr(16),
		DoNotRelay: &doNotRelay,
	})
	require.NoError(t, err)
}

func TestWithdrawalService_Process_WalletFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletClient(ctrl)
	wallet.EXPECT().TransferSplit(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	svc := NewWithdrawalService(wallet, zerolog.Nop())
	_, err := svc.Process(context.Background(), &domain.WithdrawalMessage{
		Type:      domain.MessageTypeWithdraw,
		ToAddress: "9xA",
		AmountXMR: floatPtr(1),
	})
	require.Error(t, err)
}
