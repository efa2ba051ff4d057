package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpHandler "zippay/internal/adapter/http/handler"
	redisStorage "zippay/internal/adapter/storage/redis"
	"zippay/internal/core/domain"
	"zippay/internal/core/ports"
	"zippay/internal/service"
	"zippay/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPIN = "4821"

// testApp builds the full application stack: real HTTP layer, middleware,
// handlers, the ledger engine, and the real Redis adapters against
// miniredis. Only the postgres state store is replaced with an in-memory
// implementation.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	cache  *redisStorage.SnapshotCache
	store  *inMemoryStateStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.New("error", false)
	cache := redisStorage.NewSnapshotCache(rdb, time.Hour)
	notifier := redisStorage.NewPubSubNotifier(rdb, log)
	store := newInMemoryStateStore()

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	pinHash, err := hashSvc.Hash(testPIN)
	require.NoError(t, err)

	state := domain.NewInitialState(decimal.NewFromInt(10000))
	ledgerSvc := service.NewLedgerService(state, service.LedgerOptions{
		Limits:        domain.DefaultLimits(),
		UserLabel:     "ZipPay User",
		SnapshotDepth: 10,
		ReloadDelay:   20 * time.Millisecond,
	}, store, cache, notifier, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:       ledgerSvc,
		TokenSvc:     tokenSvc,
		HashSvc:      hashSvc,
		OperatorPIN:  pinHash,
		MerchantName: "Local Merchant",
		HealthCheckers: []ports.HealthChecker{
			redisStorage.NewHealthCheck(rdb),
		},
		Logger: log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server: server,
		redis:  mr,
		cache:  cache,
		store:  store,
	}
}

// do sends an authenticated JSON request and decodes the envelope.
func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, map[string]interface{}) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	code, envelope := a.do(t, http.MethodPost, "/api/v1/session", "", map[string]string{"pin": testPIN})
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]interface{})
	return data["token"].(string)
}

func data(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "no data in envelope: %v", envelope)
	return d
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Session(t *testing.T) {
	app := newTestApp(t)

	code, envelope := app.do(t, http.MethodPost, "/api/v1/session", "", map[string]string{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_001", envelope["error_code"])

	token := app.login(t)
	assert.NotEmpty(t, token)
}

func TestIntegration_RequiresAuth(t *testing.T) {
	app := newTestApp(t)

	code, envelope := app.do(t, http.MethodGet, "/api/v1/snapshot", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_002", envelope["error_code"])
}

func TestIntegration_FullPaymentDay(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	// Fresh ledger: empty wallet, funded bank, everything offline.
	code, envelope := app.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
	require.Equal(t, http.StatusOK, code)
	snap := data(t, envelope)
	assert.Equal(t, "0", snap["user_balance"])
	assert.Equal(t, "10000", snap["bank_balance"])
	assert.Equal(t, false, snap["bluetooth"])

	// Loading before any link is up fails.
	code, envelope = app.do(t, http.MethodPost, "/api/v1/wallet/load", token, map[string]any{"amount": "100"})
	assert.Equal(t, http.StatusPreconditionFailed, code)
	assert.Equal(t, "DEV_002", envelope["error_code"])

	// Bring both channels up.
	for _, channel := range []string{"bluetooth", "wifi"} {
		code, _ = app.do(t, http.MethodPut, "/api/v1/connectivity", token, map[string]any{"channel": channel, "on": true})
		require.Equal(t, http.StatusOK, code)
	}

	// Load 100 from the bank.
	code, envelope = app.do(t, http.MethodPost, "/api/v1/wallet/load", token, map[string]any{"amount": "100"})
	require.Equal(t, http.StatusCreated, code)
	tx := data(t, envelope)
	assert.Equal(t, "Primary Bank", tx["counterparty"])

	// Merchant asks for 30; the watch approves.
	code, envelope = app.do(t, http.MethodPost, "/api/v1/payments/request", token, map[string]any{"origin": "Corner Cafe", "amount": "30"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, data(t, envelope)["placed"])

	code, envelope = app.do(t, http.MethodPost, "/api/v1/payments/resolve", token, map[string]any{"approve": true})
	require.Equal(t, http.StatusOK, code)
	snap = data(t, envelope)
	assert.Equal(t, "70", snap["user_balance"])
	assert.Equal(t, "30", snap["merchant_balance"])
	assert.Equal(t, float64(1), snap["unsynced_count"])

	// Sync the watch queue into durable history.
	code, envelope = app.do(t, http.MethodPost, "/api/v1/wallet/sync", token, nil)
	require.Equal(t, http.StatusOK, code)
	snap = data(t, envelope)
	assert.Equal(t, float64(0), snap["unsynced_count"])
	recent := snap["recent_transactions"].([]interface{})
	require.Len(t, recent, 2)
	first := recent[0].(map[string]interface{})
	assert.Equal(t, "Corner Cafe", first["counterparty"])
	assert.Equal(t, "DEBIT", first["kind"])

	// Merchant settles the collected balance.
	code, envelope = app.do(t, http.MethodPost, "/api/v1/merchant/settle", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "30", data(t, envelope)["amount"])

	code, envelope = app.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
	require.Equal(t, http.StatusOK, code)
	snap = data(t, envelope)
	assert.Equal(t, "0", snap["merchant_balance"])
	assert.Equal(t, "30", snap["settled_balance"])

	// Every mutation reached the durable store and the Redis cache.
	assert.Greater(t, app.store.saveCount(), 5)
	cached, err := app.cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cached)
}

func TestIntegration_EmergencyAndDebt(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	for _, channel := range []string{"bluetooth", "wifi"} {
		code, _ := app.do(t, http.MethodPut, "/api/v1/connectivity", token, map[string]any{"channel": channel, "on": true})
		require.Equal(t, http.StatusOK, code)
	}

	code, _ := app.do(t, http.MethodPost, "/api/v1/wallet/load", token, map[string]any{"amount": "30"})
	require.Equal(t, http.StatusCreated, code)

	// 100 requested against a balance of 30: emergency overdraft with 4% fee.
	code, _ = app.do(t, http.MethodPost, "/api/v1/payments/request", token, map[string]any{"origin": "Pharmacy", "amount": "100"})
	require.Equal(t, http.StatusCreated, code)

	code, envelope := app.do(t, http.MethodPost, "/api/v1/payments/resolve", token, map[string]any{"approve": true})
	require.Equal(t, http.StatusOK, code)
	snap := data(t, envelope)
	assert.Equal(t, "-74", snap["user_balance"])
	assert.Equal(t, "100", snap["merchant_balance"])

	// In debt: any further payment is refused until a top-up clears it.
	code, _ = app.do(t, http.MethodPost, "/api/v1/payments/request", token, map[string]any{"origin": "Pharmacy", "amount": "5"})
	require.Equal(t, http.StatusCreated, code)

	code, envelope = app.do(t, http.MethodPost, "/api/v1/payments/resolve", token, map[string]any{"approve": true})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "PAY_005", envelope["error_code"])
}

func TestIntegration_AutoReload(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	for _, channel := range []string{"bluetooth", "wifi"} {
		code, _ := app.do(t, http.MethodPut, "/api/v1/connectivity", token, map[string]any{"channel": channel, "on": true})
		require.Equal(t, http.StatusOK, code)
	}

	code, _ := app.do(t, http.MethodPost, "/api/v1/wallet/load", token, map[string]any{"amount": "40"})
	require.Equal(t, http.StatusCreated, code)

	code, envelope := app.do(t, http.MethodPut, "/api/v1/wallet/auto-reload", token, map[string]any{"enabled": true})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, data(t, envelope)["auto_reload"])

	// Balance 40 is below the threshold: the monitor refills to 200 after
	// the settling delay.
	require.Eventually(t, func() bool {
		_, envelope := app.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
		return data(t, envelope)["user_balance"] == "200"
	}, 2*time.Second, 25*time.Millisecond)

	_, envelope = app.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
	snap := data(t, envelope)
	assert.Equal(t, "9800", snap["bank_balance"]) // 10000 - 40 - 160
	recent := snap["recent_transactions"].([]interface{})
	require.NotEmpty(t, recent)
	assert.Equal(t, "Auto-Reload (Bank)", recent[0].(map[string]interface{})["counterparty"])
}

func TestIntegration_ConcurrentLoads(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	for _, channel := range []string{"bluetooth", "wifi"} {
		code, _ := app.do(t, http.MethodPut, "/api/v1/connectivity", token, map[string]any{"channel": channel, "on": true})
		require.Equal(t, http.StatusOK, code)
	}

	const workers = 20
	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i], _ = app.do(t, http.MethodPost, "/api/v1/wallet/load", token, map[string]any{"amount": "10"})
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, fmt.Sprintf("load %d failed", i))
	}

	_, envelope := app.do(t, http.MethodGet, "/api/v1/snapshot", token, nil)
	snap := data(t, envelope)
	assert.Equal(t, "200", snap["user_balance"])
	assert.Equal(t, "9800", snap["bank_balance"])
}
