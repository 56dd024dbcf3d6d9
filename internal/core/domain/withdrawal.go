package domain

import "encoding/json"

// MessageTypeWithdraw is the only queue message type this service processes.
const MessageTypeWithdraw = "withdraw"

// WithdrawalMessage is an inbound instruction from the withdrawal queue. It
// exists only as a queue payload and is never persisted.
type WithdrawalMessage struct {
	Type        string   `json:"type"`
	ToAddress   string   `json:"to_address"`
	AmountXMR   *float64 `json:"amount_xmr"`
	FromAddress string   `json:"from_address,omitempty"`

	// Optional passthrough fields, forwarded verbatim to the wallet.
	Priority   *uint64 `json:"priority,omitempty"`
	RingSize   *uint64 `json:"ring_size,omitempty"`
	DoNotRelay *bool   `json:"do_not_relay,omitempty"`
	PaymentID  *string `json:"payment_id,omitempty"`
	UnlockTime *uint64 `json:"unlock_time,omitempty"`
}

// ParseWithdrawalMessage decodes a queue payload into a typed message.
// Field-level validation happens in the processor; this only rejects bodies
// that are not JSON objects of the expected shape.
func ParseWithdrawalMessage(body []byte) (*WithdrawalMessage, error) {
	var msg WithdrawalMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
