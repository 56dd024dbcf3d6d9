package postgres

import (
	"context"
	"fmt"
)

// schemaDDL bootstraps the address ledger. Idempotent; migration tooling is
// out of scope for this service.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS address_map (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT       NOT NULL,
	address       VARCHAR(128) NOT NULL,
	label         VARCHAR(255),
	account_index BIGINT       NOT NULL DEFAULT 0,
	address_index BIGINT       NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_address_map_address UNIQUE (address)
);
CREATE INDEX IF NOT EXISTS idx_address_map_user_id ON address_map (user_id);
CREATE INDEX IF NOT EXISTS idx_address_map_label ON address_map (label);
`

// InitSchema creates the address ledger table if it does not exist yet.
func InitSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}
