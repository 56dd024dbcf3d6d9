package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "monero-wallet-manager/internal/adapter/http/handler"
	redisStorage "monero-wallet-manager/internal/adapter/storage/redis"
	"monero-wallet-manager/internal/adapter/wallet"
	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack against a fake wallet RPC server
// and an in-memory ledger, with rate limiting backed by miniredis. It
// exercises the real HTTP layer, middleware, services, and wallet client
// end-to-end.
type testApp struct {
	server *httptest.Server
	wallet *fakeWalletRPC
	repo   *inMemoryAddressRepo
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T, queueAdmin httpHandler.QueueAdmin) *testApp {
	t.Helper()

	fw := newFakeWalletRPC()
	t.Cleanup(fw.Close)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zerolog.Nop()
	walletClient := wallet.NewClient(wallet.Config{
		BaseURL: fw.URL(),
		Timeout: 5 * time.Second,
	}, log)

	repo := newInMemoryAddressRepo()
	addressSvc := service.NewAddressService(walletClient, repo, 0, log)
	transferSvc := service.NewTransferService(walletClient, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Wallet:         walletClient,
		AddressSvc:     addressSvc,
		TransferSvc:    transferSvc,
		QueueAdmin:     queueAdmin,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Logger:         log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testApp{server: srv, wallet: fw, repo: repo, redis: mr}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := app.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(65562), body["wallet"].(map[string]any)["version"])
}

func TestAddressLifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	// Allocate
	resp, body := app.do(t, http.MethodPost, "/addresses", map[string]any{
		"user_id": 42,
		"label":   "user-42",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "sub-1", body["address"])
	assert.Equal(t, float64(1), body["address_index"])

	// List filtered by user
	resp, _ = app.do(t, http.MethodGet, "/addresses?user_id=42", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Ledger lookup by label
	resp, body = app.do(t, http.MethodGet, "/addresses/by-label/user-42", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sub-1", body["address"])

	// Wallet-resolved lookup by address
	resp, body = app.do(t, http.MethodGet, "/addresses/by-address/sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-42", body["label"])
	assert.Equal(t, float64(1), body["address_index"])

	// Unknown label
	resp, body = app.do(t, http.MethodGet, "/addresses/by-label/nobody", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "LEDGER_001", body["error_code"])
}

func TestCreateAddress_Validation(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := app.do(t, http.MethodPost, "/addresses", map[string]any{"label": "no-user"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])

	// The wallet never allocated anything for the rejected request.
	resp, created := app.do(t, http.MethodPost, "/addresses", map[string]any{"user_id": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "sub-1", created["address"])
}

func TestCreateAddress_DuplicateMapping(t *testing.T) {
	app := newTestApp(t, nil)

	// Seed the ledger with the address the wallet will hand out next.
	require.NoError(t, app.repo.Create(context.Background(), &domain.AddressRecord{
		UserID:  7,
		Address: "sub-1",
	}))

	resp, body := app.do(t, http.MethodPost, "/addresses", map[string]any{"user_id": 42})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "LEDGER_002", body["error_code"])
}

func TestTransferFlow(t *testing.T) {
	app := newTestApp(t, nil)

	// Allocate a source subaddress first.
	resp, _ := app.do(t, http.MethodPost, "/addresses", map[string]any{"user_id": 42, "label": "payer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := app.do(t, http.MethodPost, "/transfer", map[string]any{
		"to_address":   "primary-addr",
		"amount_xmr":   1.5,
		"from_address": "sub-1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "txh-1", body["tx_hash"])
	assert.Equal(t, float64(1_500_000_000_000), body["amount"])

	// Unresolvable source is a client error on the synchronous path.
	resp, body = app.do(t, http.MethodPost, "/transfer", map[string]any{
		"to_address":   "primary-addr",
		"amount_xmr":   1.0,
		"from_address": "not-in-wallet",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])

	resp, body = app.do(t, http.MethodPost, "/transfer_split", map[string]any{
		"to_address": "primary-addr",
		"amount_xmr": 0.25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"txh-1"}, body["tx_hash_list"])
}

func TestSweepAll_FallsBackToPrimaryDestination(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := app.do(t, http.MethodPost, "/addresses", map[string]any{"user_id": 42, "label": "hot"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app.wallet.setBalance("sub-1", 3_000_000_000_000)

	resp, body := app.do(t, http.MethodPost, "/sweep_all", map[string]any{"from_address": "sub-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"sweep-tx"}, body["tx_hash_list"])
	assert.InDelta(t, 3.0, body["total_xmr"].(float64), 1e-9)
}

func TestBalanceByAddressAndLabel(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := app.do(t, http.MethodPost, "/addresses", map[string]any{"user_id": 42, "label": "saver"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app.wallet.setBalance("sub-1", 2_000_000_000_000)

	resp, body := app.do(t, http.MethodGet, "/balance/sub-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2_000_000_000_000), body["balance_atomic"])
	assert.InDelta(t, 2.0, body["balance_xmr"].(float64), 1e-9)

	resp, body = app.do(t, http.MethodGet, "/balance/label/saver", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sub-1", body["address"])
}

func TestTransferRateLimit(t *testing.T) {
	app := newTestApp(t, nil)

	payload := map[string]any{"to_address": "primary-addr", "amount_xmr": 0.001}
	var last *http.Response
	var lastBody map[string]any
	for i := 0; i < 31; i++ {
		last, lastBody = app.do(t, http.MethodPost, "/transfer", payload)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	assert.Equal(t, "RATE_001", lastBody["error_code"])
	assert.NotEmpty(t, last.Header.Get("Retry-After"))
}

// drainBroker is a single-session broker for driving the consumer through
// the admin endpoint.
type drainBroker struct {
	deliveries []*drainDelivery
	pos        int
}

type drainDelivery struct {
	body  []byte
	acked bool
}

func (d *drainDelivery) Body() []byte { return d.body }

func (d *drainDelivery) Ack() error {
	d.acked = true
	return nil
}

func (d *drainDelivery) Nack(requeue bool) error { return nil }

func (b *drainBroker) Open(ctx context.Context) (ports.QueueSession, error) { return b, nil }

func (b *drainBroker) Get() (ports.Delivery, bool, error) {
	if b.pos >= len(b.deliveries) {
		return nil, false, nil
	}
	d := b.deliveries[b.pos]
	b.pos++
	return d, true, nil
}

func (b *drainBroker) Stats() (ports.QueueStats, error) {
	return ports.QueueStats{Queue: "withdrawals", MessageCount: len(b.deliveries) - b.pos}, nil
}

func (b *drainBroker) Close() error { return nil }

func TestAdminDrain_ProcessesQueuedWithdrawal(t *testing.T) {
	fwPlaceholder := newFakeWalletRPC()
	defer fwPlaceholder.Close()

	msg := fmt.Sprintf(`{"type":"withdraw","to_address":"%s","amount_xmr":0.5}`, "primary-addr")
	delivery := &drainDelivery{body: []byte(msg)}
	broker := &drainBroker{deliveries: []*drainDelivery{delivery}}

	log := zerolog.Nop()
	walletClient := wallet.NewClient(wallet.Config{BaseURL: fwPlaceholder.URL(), Timeout: 5 * time.Second}, log)
	withdrawalSvc := service.NewWithdrawalService(walletClient, log)
	consumer := service.NewConsumer(broker, withdrawalSvc, time.Minute, log)

	app := newTestApp(t, consumer)

	resp, body := app.do(t, http.MethodGet, "/admin/queue", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, float64(1), body["message_count"])

	resp, body = app.do(t, http.MethodPost, "/admin/drain", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.True(t, delivery.acked)
}
