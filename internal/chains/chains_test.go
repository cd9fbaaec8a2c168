package chains

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wallet-analyzer/internal/config"
	"wallet-analyzer/internal/models"
	"wallet-analyzer/internal/rpc"

	"github.com/rs/zerolog"
)

const (
	oneEtherHex  = "0xde0b6b3a7640000" // 1000000000000000000 wei
	halfSolValue = 500000000           // lamports
)

type rpcCall struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newFakeEVMServer answers the probe, balance, and block-head methods the
// EVM client issues. calls counts every request received.
func newFakeEVMServer(t *testing.T, balanceHex string, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcCall
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}

		var result string
		switch req.Method {
		case "web3_clientVersion":
			result = "Geth/v1.15.5-stable"
		case "eth_getBalance":
			result = balanceHex
		case "eth_blockNumber":
			result = "0x1312d00"
		default:
			http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
}

// newFakeSolanaServer answers getVersion, getBalance, and getSlot.
func newFakeSolanaServer(t *testing.T, lamports uint64, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcCall
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}

		var result interface{}
		switch req.Method {
		case "getVersion":
			result = map[string]string{"solana-core": "1.18.22"}
		case "getBalance":
			result = map[string]interface{}{
				"context": map[string]uint64{"slot": 250000000},
				"value":   lamports,
			}
		case "getSlot":
			result = 250000000
		default:
			http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
}

func testConfig(evmURL, solanaURL string) *config.Config {
	chains := make(map[models.Chain]config.ChainConfig)
	for _, chain := range models.Chains() {
		if chain.IsEVM() {
			chains[chain] = config.ChainConfig{RpcEndpoint: evmURL, RateLimit: 100}
		} else {
			chains[chain] = config.ChainConfig{RpcEndpoint: solanaURL, RateLimit: 100}
		}
	}
	return &config.Config{HTTPTimeout: 5 * time.Second, Chains: chains}
}

func newSolanaTestClient(endpoint string) *SolanaClient {
	logger := zerolog.New(nil)
	return NewSolanaClient(rpc.NewClient(endpoint, "", 100, 5*time.Second, &logger))
}

func TestEVMClientBalance(t *testing.T) {
	server := newFakeEVMServer(t, oneEtherHex, nil)
	defer server.Close()

	client, err := NewEVMClient(context.Background(), models.Ethereum, server.URL)
	if err != nil {
		t.Fatalf("NewEVMClient failed: %v", err)
	}
	defer client.Close()

	balance, err := client.Balance(context.Background(), "0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 1.0 {
		t.Errorf("balance = %v, want 1.0", balance)
	}
}

func TestEVMClientInvalidAddress(t *testing.T) {
	var calls int32
	server := newFakeEVMServer(t, oneEtherHex, &calls)
	defer server.Close()

	client, err := NewEVMClient(context.Background(), models.Ethereum, server.URL)
	if err != nil {
		t.Fatalf("NewEVMClient failed: %v", err)
	}
	defer client.Close()

	_, err = client.Balance(context.Background(), "not-an-address")
	if !errors.Is(err, models.ErrInvalidAddress) {
		t.Fatalf("error = %v, want ErrInvalidAddress", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("expected no network call for invalid address, got %d", n)
	}
}

func TestEVMClientProbe(t *testing.T) {
	server := newFakeEVMServer(t, oneEtherHex, nil)
	defer server.Close()

	client, err := NewEVMClient(context.Background(), models.Arbitrum, server.URL)
	if err != nil {
		t.Fatalf("NewEVMClient failed: %v", err)
	}
	defer client.Close()

	version, err := client.Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if !strings.Contains(version, "Geth") {
		t.Errorf("version = %q, want client version string", version)
	}
}

func TestSolanaClientBalance(t *testing.T) {
	server := newFakeSolanaServer(t, halfSolValue, nil)
	defer server.Close()

	client := newSolanaTestClient(server.URL)
	defer client.Close()

	balance, err := client.Balance(context.Background(), "5guD4Uz462GT4Y4gEuqyGsHZ59JGxFN4a3rF6KWguMcJ")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 0.5 {
		t.Errorf("balance = %v, want 0.5", balance)
	}
}

func TestSolanaClientInvalidAddress(t *testing.T) {
	var calls int32
	server := newFakeSolanaServer(t, halfSolValue, &calls)
	defer server.Close()

	client := newSolanaTestClient(server.URL)
	defer client.Close()

	for _, address := range []string{"", "abc", "0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", "!!!not-base58!!!"} {
		_, err := client.Balance(context.Background(), address)
		if !errors.Is(err, models.ErrInvalidAddress) {
			t.Errorf("Balance(%q) error = %v, want ErrInvalidAddress", address, err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("expected no network call for invalid addresses, got %d", n)
	}
}

func TestSolanaClientProbe(t *testing.T) {
	server := newFakeSolanaServer(t, halfSolValue, nil)
	defer server.Close()

	client := newSolanaTestClient(server.URL)
	defer client.Close()

	version, err := client.Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if version != "1.18.22" {
		t.Errorf("version = %q, want 1.18.22", version)
	}
}

func TestRegistryConnectsEveryChain(t *testing.T) {
	evmServer := newFakeEVMServer(t, oneEtherHex, nil)
	defer evmServer.Close()
	solServer := newFakeSolanaServer(t, halfSolValue, nil)
	defer solServer.Close()

	logger := zerolog.New(nil)
	registry, err := NewRegistry(context.Background(), testConfig(evmServer.URL, solServer.URL), &logger)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	defer registry.Close()

	for _, chain := range models.Chains() {
		client, ok := registry.Client(chain)
		if !ok {
			t.Errorf("missing client for %s", chain)
			continue
		}
		if client.Chain() != chain {
			t.Errorf("client for %s reports %s", chain, client.Chain())
		}
	}
	if got := len(registry.Chains()); got != 4 {
		t.Errorf("Chains() returned %d entries, want 4", got)
	}
}

func TestRegistryMissingEndpoint(t *testing.T) {
	solServer := newFakeSolanaServer(t, halfSolValue, nil)
	defer solServer.Close()
	evmServer := newFakeEVMServer(t, oneEtherHex, nil)
	defer evmServer.Close()

	cfg := testConfig(evmServer.URL, solServer.URL)
	delete(cfg.Chains, models.Arbitrum)

	logger := zerolog.New(nil)
	_, err := NewRegistry(context.Background(), cfg, &logger)
	if err == nil {
		t.Fatal("expected error for missing endpoint")
	}
	if !strings.Contains(err.Error(), "Arbitrum") {
		t.Errorf("error %q does not name the missing chain", err)
	}
}

func TestRegistryProbeFailureAbortsAll(t *testing.T) {
	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badServer.Close()
	solServer := newFakeSolanaServer(t, halfSolValue, nil)
	defer solServer.Close()

	logger := zerolog.New(nil)
	registry, err := NewRegistry(context.Background(), testConfig(badServer.URL, solServer.URL), &logger)
	if err == nil {
		registry.Close()
		t.Fatal("expected probe failure to abort initialization")
	}
}

func TestSolanaProbeFailureAbortsAll(t *testing.T) {
	evmServer := newFakeEVMServer(t, oneEtherHex, nil)
	defer evmServer.Close()
	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badServer.Close()

	logger := zerolog.New(nil)
	registry, err := NewRegistry(context.Background(), testConfig(evmServer.URL, badServer.URL), &logger)
	if err == nil {
		registry.Close()
		t.Fatal("expected Solana probe failure to abort initialization")
	}
}
