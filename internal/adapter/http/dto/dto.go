package dto

// CreateAddressRequest is the request body for subaddress allocation.
type CreateAddressRequest struct {
	UserID int64   `json:"user_id" binding:"required"`
	Label  *string `json:"label,omitempty"`
}

// TransferRequest is the request body for transfer and transfer_split.
// Optional wallet parameters are passed through verbatim; absent fields are
// never sent to the wallet.
type TransferRequest struct {
	ToAddress   string   `json:"to_address"`
	AmountXMR   *float64 `json:"amount_xmr"`
	FromAddress string   `json:"from_address,omitempty"`
	Priority    *uint64  `json:"priority,omitempty"`
	RingSize    *uint64  `json:"ring_size,omitempty"`
	DoNotRelay  *bool    `json:"do_not_relay,omitempty"`
	PaymentID   *string  `json:"payment_id,omitempty"`
	UnlockTime  *uint64  `json:"unlock_time,omitempty"`
}

// SweepRequest is the request body for sweep_all. A missing to_address
// sweeps to the wallet's primary address.
type SweepRequest struct {
	FromAddress string  `json:"from_address"`
	ToAddress   string  `json:"to_address,omitempty"`
	Priority    *uint64 `json:"priority,omitempty"`
	RingSize    *uint64 `json:"ring_size,omitempty"`
	DoNotRelay  *bool   `json:"do_not_relay,omitempty"`
	PaymentID   *string `json:"payment_id,omitempty"`
	UnlockTime  *uint64 `json:"unlock_time,omitempty"`
}
