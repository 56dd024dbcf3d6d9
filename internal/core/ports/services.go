package ports

import (
	"context"

	"monero-wallet-manager/internal/core/domain"
)

// --- Wallet RPC Port ---

// SubaddressInfo is one entry of a get_address response.
type SubaddressInfo struct {
	Address      string
	Label        string
	AddressIndex uint64
	Used         bool
}

// SubaddressBalance is one per_subaddress entry of a get_balance response.
type SubaddressBalance struct {
	AddressIndex    uint64
	Address         string
	Label           string
	Balance         uint64
	UnlockedBalance uint64
}

// BalanceResult holds a get_balance response. PerSubaddress may be empty
// even when the queried index exists; callers fall back to the account-level
// totals in that case.
type BalanceResult struct {
	Balance         uint64
	UnlockedBalance uint64
	PerSubaddress   []SubaddressBalance
}

// Destination is a single transfer output.
type Destination struct {
	Amount  uint64 `json:"amount"`
	Address string `json:"address"`
}

// TransferOptions are the optional wallet parameters passed through verbatim
// from requests and queue messages. Nil means "not supplied" and the field is
// omitted from the RPC params.
type TransferOptions struct {
	Priority   *uint64
	RingSize   *uint64
	DoNotRelay *bool
	PaymentID  *string
	UnlockTime *uint64
}

// TransferParams holds the source/destination parameters of a transfer or
// transfer_split call. A nil AccountIndex leaves source selection to the
// wallet.
type TransferParams struct {
	Destinations   []Destination
	AccountIndex   *uint64
	SubaddrIndices []uint64
	Options        TransferOptions
}

// TransferResult holds a transfer response.
type TransferResult struct {
	TxHash string `json:"tx_hash"`
	TxKey  string `json:"tx_key"`
	Amount uint64 `json:"amount"`
	Fee    uint64 `json:"fee"`
}

// TransferSplitResult holds a transfer_split response (one transfer may be
// split across several transactions).
type TransferSplitResult struct {
	TxHashList []string `json:"tx_hash_list"`
	TxKeyList  []string `json:"tx_key_list"`
	AmountList []uint64 `json:"amount_list"`
	FeeList    []uint64 `json:"fee_list"`
}

// SweepParams holds the parameters of a sweep_all call.
type SweepParams struct {
	AccountIndex   uint64
	SubaddrIndices []uint64
	Address        string
	Options        TransferOptions
}

// SweepResult holds a sweep_all response.
type SweepResult struct {
	TxHashList []string
	AmountList []uint64
	FeeList    []uint64
}

// WalletClient is the port over the wallet's JSON-RPC interface. The adapter
// translates transport and protocol failures into the apperror taxonomy.
type WalletClient interface {
	GetVersion(ctx context.Context) (uint64, error)
	GetAddress(ctx context.Context, accountIndex uint64, addressIndices []uint64) ([]SubaddressInfo, error)
	CreateAddress(ctx context.Context, accountIndex uint64, label string) (address string, addressIndex uint64, err error)
	// GetAddressIndex resolves a subaddress to its (major, minor) coordinates.
	GetAddressIndex(ctx context.Context, address string) (major uint64, minor uint64, err error)
	GetBalance(ctx context.Context, accountIndex uint64, addressIndices []uint64) (*BalanceResult, error)
	Transfer(ctx context.Context, params TransferParams) (*TransferResult, error)
	TransferSplit(ctx context.Context, params TransferParams) (*TransferSplitResult, error)
	SweepAll(ctx context.Context, params SweepParams) (*SweepResult, error)
}

// --- Service Ports ---

// WithdrawalProcessor executes one validated withdrawal instruction and
// returns the resulting transaction hashes.
type WithdrawalProcessor interface {
	Process(ctx context.Context, msg *domain.WithdrawalMessage) ([]string, error)
}

// PrimaryAddress is the wallet's (0,0) address.
type PrimaryAddress struct {
	AccountIndex uint64 `json:"account_index"`
	AddressIndex uint64 `json:"address_index"`
	Address      string `json:"address"`
}

// AddressLookup is the wallet-resolved view of a subaddress.
type AddressLookup struct {
	Address      string `json:"address"`
	Label        string `json:"label"`
	AccountIndex uint64 `json:"account_index"`
	AddressIndex uint64 `json:"address_index"`
}

// BalanceInfo reports a subaddress balance in atomic and major units.
type BalanceInfo struct {
	Address               string  `json:"address"`
	AccountIndex          uint64  `json:"account_index"`
	AddressIndex          uint64  `json:"address_index"`
	BalanceAtomic         uint64  `json:"balance_atomic"`
	UnlockedBalanceAtomic uint64  `json:"unlocked_balance_atomic"`
	BalanceXMR            float64 `json:"balance_xmr"`
	UnlockedBalanceXMR    float64 `json:"unlocked_balance_xmr"`
}

// AddressService manages the user/subaddress ledger.
type AddressService interface {
	// Create allocates a subaddress via the wallet and persists the mapping.
	Create(ctx context.Context, userID int64, label *string) (*domain.AddressRecord, error)
	List(ctx context.Context, userID *int64) ([]domain.AddressRecord, error)
	// GetByLabel returns the ledger record or a not-found error.
	GetByLabel(ctx context.Context, label string) (*domain.AddressRecord, error)
	// LookupByAddress resolves an address through the wallet.
	LookupByAddress(ctx context.Context, address string) (*AddressLookup, error)
}

// TransferRequest holds validated input for a synchronous transfer.
type TransferRequest struct {
	ToAddress   string
	AmountXMR   *float64
	FromAddress string
	Options     TransferOptions
}

// SweepRequest holds validated input for a sweep_all.
type SweepRequest struct {
	FromAddress string
	ToAddress   string
	Options     TransferOptions
}

// SweepResponse reports the result of a sweep, with the total swept amount
// computed from the per-transaction amount list.
type SweepResponse struct {
	TxHashList       []string `json:"tx_hash_list"`
	AmountListAtomic []uint64 `json:"amount_list_atomic"`
	FeeListAtomic    []uint64 `json:"fee_list_atomic"`
	TotalXMR         float64  `json:"total_xmr"`
}

// TransferService exposes the synchronous wallet operations.
type TransferService interface {
	PrimaryAddress(ctx context.Context) (*PrimaryAddress, error)
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	TransferSplit(ctx context.Context, req TransferRequest) (*TransferSplitResult, error)
	SweepAll(ctx context.Context, req SweepRequest) (*SweepResponse, error)
	BalanceByAddress(ctx context.Context, address string) (*BalanceInfo, error)
}
