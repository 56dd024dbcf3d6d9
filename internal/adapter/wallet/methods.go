package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"
)

// Typed wrappers over Call implementing ports.WalletClient. Wire structs stay
// private to this package; services only see the port types.

var _ ports.WalletClient = (*Client)(nil)

type getVersionResult struct {
	Version uint64 `json:"version"`
}

// GetVersion probes the wallet and returns its reported version.
func (c *Client) GetVersion(ctx context.Context) (uint64, error) {
	var res getVersionResult
	if err := c.callInto(ctx, "get_version", nil, &res); err != nil {
		return 0, err
	}
	return res.Version, nil
}

type getAddressParams struct {
	AccountIndex uint64   `json:"account_index"`
	AddressIndex []uint64 `json:"address_index,omitempty"`
}

type getAddressResult struct {
	Addresses []struct {
		Address      string `json:"address"`
		Label        string `json:"label"`
		AddressIndex uint64 `json:"address_index"`
		Used         bool   `json:"used"`
	} `json:"addresses"`
}

// GetAddress fetches subaddress info for the given indices under an account.
func (c *Client) GetAddress(ctx context.Context, accountIndex uint64, addressIndices []uint64) ([]ports.SubaddressInfo, error) {
	var res getAddressResult
	params := getAddressParams{AccountIndex: accountIndex, AddressIndex: addressIndices}
	if err := c.callInto(ctx, "get_address", params, &res); err != nil {
		return nil, err
	}
	infos := make([]ports.SubaddressInfo, 0, len(res.Addresses))
	for _, a := range res.Addresses {
		infos = append(infos, ports.SubaddressInfo{
			Address:      a.Address,
			Label:        a.Label,
			AddressIndex: a.AddressIndex,
			Used:         a.Used,
		})
	}
	return infos, nil
}

type createAddressParams struct {
	AccountIndex uint64 `json:"account_index"`
	Label        string `json:"label,omitempty"`
}

type createAddressResult struct {
	Address      string `json:"address"`
	AddressIndex uint64 `json:"address_index"`
}

// CreateAddress allocates a new subaddress under the given account.
func (c *Client) CreateAddress(ctx context.Context, accountIndex uint64, label string) (string, uint64, error) {
	var res createAddressResult
	params := createAddressParams{AccountIndex: accountIndex, Label: label}
	if err := c.callInto(ctx, "create_address", params, &res); err != nil {
		return "", 0, err
	}
	if res.Address == "" {
		return "", 0, apperror.ErrWalletRPC(0, "create_address returned no address")
	}
	return res.Address, res.AddressIndex, nil
}

type getAddressIndexParams struct {
	Address string `json:"address"`
}

type getAddressIndexResult struct {
	Index struct {
		Major uint64 `json:"major"`
		Minor uint64 `json:"minor"`
	} `json:"index"`
}

// GetAddressIndex resolves an address to its (major, minor) subaddress
// coordinates. Absent fields decode to 0.
func (c *Client) GetAddressIndex(ctx context.Context, address string) (uint64, uint64, error) {
	var res getAddressIndexResult
	if err := c.callInto(ctx, "get_address_index", getAddressIndexParams{Address: address}, &res); err != nil {
		return 0, 0, err
	}
	return res.Index.Major, res.Index.Minor, nil
}

type getBalanceParams struct {
	AccountIndex   uint64   `json:"account_index"`
	AddressIndices []uint64 `json:"address_indices,omitempty"`
}

type getBalanceResult struct {
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
	PerSubaddress   []struct {
		AddressIndex    uint64 `json:"address_index"`
		Address         string `json:"address"`
		Label           string `json:"label"`
		Balance         uint64 `json:"balance"`
		UnlockedBalance uint64 `json:"unlocked_balance"`
	} `json:"per_subaddress"`
}

// GetBalance fetches account and per-subaddress balances.
func (c *Client) GetBalance(ctx context.Context, accountIndex uint64, addressIndices []uint64) (*ports.BalanceResult, error) {
	var res getBalanceResult
	params := getBalanceParams{AccountIndex: accountIndex, AddressIndices: addressIndices}
	if err := c.callInto(ctx, "get_balance", params, &res); err != nil {
		return nil, err
	}
	out := &ports.BalanceResult{
		Balance:         res.Balance,
		UnlockedBalance: res.UnlockedBalance,
	}
	for _, p := range res.PerSubaddress {
		out.PerSubaddress = append(out.PerSubaddress, ports.SubaddressBalance{
			AddressIndex:    p.AddressIndex,
			Address:         p.Address,
			Label:           p.Label,
			Balance:         p.Balance,
			UnlockedBalance: p.UnlockedBalance,
		})
	}
	return out, nil
}

type transferParams struct {
	Destinations   []ports.Destination `json:"destinations"`
	AccountIndex   *uint64             `json:"account_index,omitempty"`
	SubaddrIndices []uint64            `json:"subaddr_indices,omitempty"`
	Priority       *uint64             `json:"priority,omitempty"`
	RingSize       *uint64             `json:"ring_size,omitempty"`
	DoNotRelay     *bool               `json:"do_not_relay,omitempty"`
	PaymentID      *string             `json:"payment_id,omitempty"`
	UnlockTime     *uint64             `json:"unlock_time,omitempty"`
	GetTxKey       bool                `json:"get_tx_key,omitempty"`
	GetTxKeys      bool                `json:"get_tx_keys,omitempty"`
}

func buildTransferParams(p ports.TransferParams) transferParams {
	return transferParams{
		Destinations:   p.Destinations,
		AccountIndex:   p.AccountIndex,
		SubaddrIndices: p.SubaddrIndices,
		Priority:       p.Options.Priority,
		RingSize:       p.Options.RingSize,
		DoNotRelay:     p.Options.DoNotRelay,
		PaymentID:      p.Options.PaymentID,
		UnlockTime:     p.Options.UnlockTime,
	}
}

type transferResult struct {
	TxHash string `json:"tx_hash"`
	TxKey  string `json:"tx_key"`
	Amount uint64 `json:"amount"`
	Fee    uint64 `json:"fee"`
}

// Transfer executes an immediate single-transaction transfer.
func (c *Client) Transfer(ctx context.Context, p ports.TransferParams) (*ports.TransferResult, error) {
	params := buildTransferParams(p)
	params.GetTxKey = true

	var res transferResult
	if err := c.callInto(ctx, "transfer", params, &res); err != nil {
		return nil, err
	}
	return &ports.TransferResult{
		TxHash: res.TxHash,
		TxKey:  res.TxKey,
		Amount: res.Amount,
		Fee:    res.Fee,
	}, nil
}

type transferSplitResult struct {
	TxHashList []string `json:"tx_hash_list"`
	TxKeyList  []string `json:"tx_key_list"`
	AmountList []uint64 `json:"amount_list"`
	FeeList    []uint64 `json:"fee_list"`
}

// TransferSplit executes a transfer that the wallet may split across several
// transactions.
func (c *Client) TransferSplit(ctx context.Context, p ports.TransferParams) (*ports.TransferSplitResult, error) {
	params := buildTransferParams(p)
	params.GetTxKeys = true

	var res transferSplitResult
	if err := c.callInto(ctx, "transfer_split", params, &res); err != nil {
		return nil, err
	}
	return &ports.TransferSplitResult{
		TxHashList: res.TxHashList,
		TxKeyList:  res.TxKeyList,
		AmountList: res.AmountList,
		FeeList:    res.FeeList,
	}, nil
}

type sweepAllParams struct {
	AccountIndex   uint64   `json:"account_index"`
	SubaddrIndices []uint64 `json:"subaddr_indices,omitempty"`
	Address        string   `json:"address"`
	Priority       *uint64  `json:"priority,omitempty"`
	RingSize       *uint64  `json:"ring_size,omitempty"`
	DoNotRelay     *bool    `json:"do_not_relay,omitempty"`
	UnlockTime     *uint64  `json:"unlock_time,omitempty"`
}

type sweepAllResult struct {
	TxHashList []string `json:"tx_hash_list"`
	AmountList []uint64 `json:"amount_list"`
	// Older wallet versions report amounts under this key.
	Amounts []uint64 `json:"amounts"`
	FeeList []uint64 `json:"fee_list"`
}

// SweepAll consolidates all unlocked funds of a subaddress into the
// destination address.
func (c *Client) SweepAll(ctx context.Context, p ports.SweepParams) (*ports.SweepResult, error) {
	params := sweepAllParams{
		AccountIndex:   p.AccountIndex,
		SubaddrIndices: p.SubaddrIndices,
		Address:        p.Address,
		Priority:       p.Options.Priority,
		RingSize:       p.Options.RingSize,
		DoNotRelay:     p.Options.DoNotRelay,
		UnlockTime:     p.Options.UnlockTime,
	}

	var res sweepAllResult
	if err := c.callInto(ctx, "sweep_all", params, &res); err != nil {
		return nil, err
	}
	amounts := res.AmountList
	if len(amounts) == 0 {
		amounts = res.Amounts
	}
	return &ports.SweepResult{
		TxHashList: res.TxHashList,
		AmountList: amounts,
		FeeList:    res.FeeList,
	}, nil
}

func (c *Client) callInto(ctx context.Context, method string, params any, out any) error {
	raw, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.InternalError(fmt.Errorf("decode %s result: %w", method, err))
	}
	return nil
}
