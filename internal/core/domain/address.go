package domain

import "time"

// AddressRecord is one allocated wallet subaddress bound to an application
// user. The address column is unique across all records: the ledger never
// maps two users to the same subaddress. Records are created once, never
// updated.
type AddressRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Address      string    `json:"address"`
	Label        *string   `json:"label"`
	AccountIndex uint64    `json:"account_index"`
	AddressIndex uint64    `json:"address_index"`
	CreatedAt    time.Time `json:"created_at"`
}
