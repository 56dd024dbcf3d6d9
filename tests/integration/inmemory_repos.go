package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/pkg/apperror"
)

// inMemoryAddressRepo is a map-backed AddressRepository with the same
// uniqueness guarantee as the postgres schema.
type inMemoryAddressRepo struct {
	mu      sync.Mutex
	records []domain.AddressRecord
	nextID  int64
}

func newInMemoryAddressRepo() *inMemoryAddressRepo {
	return &inMemoryAddressRepo{nextID: 1}
}

func (r *inMemoryAddressRepo) Create(ctx context.Context, rec *domain.AddressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.Address == rec.Address {
			return apperror.ErrAddressExists(rec.Address)
		}
	}
	rec.ID = r.nextID
	r.nextID++
	rec.CreatedAt = time.Now().UTC()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryAddressRepo) List(ctx context.Context, userID *int64) ([]domain.AddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AddressRecord, 0)
	for _, rec := range r.records {
		if userID == nil || rec.UserID == *userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *inMemoryAddressRepo) GetByLabel(ctx context.Context, label string) (*domain.AddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.Label != nil && *rec.Label == label {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAddressRepo) GetByAddress(ctx context.Context, address string) (*domain.AddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.Address == address {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

// fakeWalletRPC is an httptest-backed monero-wallet-rpc stand-in. It keeps a
// subaddress table for account 0, with the primary address at minor index 0.
type fakeWalletRPC struct {
	mu        sync.Mutex
	addresses []string // minor index -> address
	labels    []string
	balances  map[string]uint64 // address -> unlocked atomic balance
	server    *httptest.Server
}

func newFakeWalletRPC() *fakeWalletRPC {
	w := &fakeWalletRPC{
		addresses: []string{"primary-addr"},
		labels:    []string{""},
		balances:  map[string]uint64{"primary-addr": 10_000_000_000_000},
	}
	w.server = httptest.NewServer(http.HandlerFunc(w.handle))
	return w
}

func (w *fakeWalletRPC) Close() { w.server.Close() }

func (w *fakeWalletRPC) URL() string { return w.server.URL }

func (w *fakeWalletRPC) setBalance(address string, atomic uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[address] = atomic
}

type rpcEnvelope struct {
	ID     uint64          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

func (w *fakeWalletRPC) handle(rw http.ResponseWriter, req *http.Request) {
	var env rpcEnvelope
	if err := json.NewDecoder(req.Body).Decode(&env); err != nil {
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	reply := func(result any) {
		_ = json.NewEncoder(rw).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      env.ID,
			"result":  result,
		})
	}
	replyError := func(code int, msg string) {
		_ = json.NewEncoder(rw).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      env.ID,
			"error":   map[string]any{"code": code, "message": msg},
		})
	}

	switch env.Method {
	case "get_version":
		reply(map[string]any{"version": 65562})

	case "create_address":
		var p struct {
			Label string `json:"label"`
		}
		_ = json.Unmarshal(env.Params, &p)
		minor := uint64(len(w.addresses))
		addr := fmt.Sprintf("sub-%d", minor)
		w.addresses = append(w.addresses, addr)
		w.labels = append(w.labels, p.Label)
		w.balances[addr] = 0
		reply(map[string]any{"address": addr, "address_index": minor})

	case "get_address":
		var p struct {
			AddressIndex []uint64 `json:"address_index"`
		}
		_ = json.Unmarshal(env.Params, &p)
		var entries []map[string]any
		for _, minor := range p.AddressIndex {
			if minor < uint64(len(w.addresses)) {
				entries = append(entries, map[string]any{
					"address":       w.addresses[minor],
					"label":         w.labels[minor],
					"address_index": minor,
				})
			}
		}
		reply(map[string]any{"addresses": entries})

	case "get_address_index":
		var p struct {
			Address string `json:"address"`
		}
		_ = json.Unmarshal(env.Params, &p)
		for minor, addr := range w.addresses {
			if addr == p.Address {
				reply(map[string]any{"index": map[string]any{"major": 0, "minor": minor}})
				return
			}
		}
		replyError(-2, "address not in wallet")

	case "get_balance":
		var p struct {
			AddressIndices []uint64 `json:"address_indices"`
		}
		_ = json.Unmarshal(env.Params, &p)
		var total uint64
		for _, b := range w.balances {
			total += b
		}
		var per []map[string]any
		for _, minor := range p.AddressIndices {
			if minor < uint64(len(w.addresses)) {
				addr := w.addresses[minor]
				per = append(per, map[string]any{
					"address_index":    minor,
					"address":          addr,
					"balance":          w.balances[addr],
					"unlocked_balance": w.balances[addr],
				})
			}
		}
		reply(map[string]any{
			"balance":          total,
			"unlocked_balance": total,
			"per_subaddress":   per,
		})

	case "transfer":
		var p struct {
			Destinations []struct {
				Amount uint64 `json:"amount"`
			} `json:"destinations"`
		}
		_ = json.Unmarshal(env.Params, &p)
		var amount uint64
		if len(p.Destinations) > 0 {
			amount = p.Destinations[0].Amount
		}
		reply(map[string]any{"tx_hash": "txh-1", "tx_key": "txk-1", "amount": amount, "fee": 88})

	case "transfer_split":
		var p struct {
			Destinations []struct {
				Amount uint64 `json:"amount"`
			} `json:"destinations"`
		}
		_ = json.Unmarshal(env.Params, &p)
		var amount uint64
		if len(p.Destinations) > 0 {
			amount = p.Destinations[0].Amount
		}
		reply(map[string]any{
			"tx_hash_list": []string{"txh-1"},
			"tx_key_list":  []string{"txk-1"},
			"amount_list":  []uint64{amount},
			"fee_list":     []uint64{88},
		})

	case "sweep_all":
		var p struct {
			SubaddrIndices []uint64 `json:"subaddr_indices"`
		}
		_ = json.Unmarshal(env.Params, &p)
		var swept uint64 = 2_500_000_000_000
		if len(p.SubaddrIndices) == 1 && p.SubaddrIndices[0] < uint64(len(w.addresses)) {
			if b := w.balances[w.addresses[p.SubaddrIndices[0]]]; b > 0 {
				swept = b
			}
		}
		reply(map[string]any{
			"tx_hash_list": []string{"sweep-tx"},
			"amount_list":  []uint64{swept},
			"fee_list":     []uint64{99},
		})

	default:
		replyError(-32601, "method not found")
	}
}
