package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/logger"
)

type ChainStatus struct {
	Name      string `json:"name"`
	BlockHead uint64 `json:"block_head"`
}

var (
	isReady       int32
	chainStatuses = make(map[string]*ChainStatus)
	statusMutex   sync.RWMutex
)

func SetReady(ready bool) {
	if ready {
		atomic.StoreInt32(&isReady, 1)
	} else {
		atomic.StoreInt32(&isReady, 0)
	}
}

func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func ReadinessHandler(w http.ResponseWriter, _ *http.Request) {
	statusMutex.RLock()
	defer statusMutex.RUnlock()

	if len(chainStatuses) == 0 || atomic.LoadInt32(&isReady) == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Not Ready"))

		return
	}

	response := make(map[string]interface{})
	response["status"] = "Ready"
	response["chains"] = chainStatuses

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// RegisterChain starts a background refresh of the chain's head for the
// readiness report.
func RegisterChain(ctx context.Context, client interfaces.ChainClient) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				head, err := client.BlockHead(ctx)
				if err != nil {
					logger.GetLogger().Error().
						Err(err).
						Str("chain", client.Chain().String()).
						Msg("Error getting latest block/slot")
				} else {
					updateChainStatus(client.Chain().String(), head)
				}
				time.Sleep(10 * time.Second)
			}
		}
	}()
}

func updateChainStatus(name string, blockHead uint64) {
	statusMutex.Lock()
	defer statusMutex.Unlock()
	chainStatuses[name] = &ChainStatus{
		Name:      name,
		BlockHead: blockHead,
	}
}

// Serve runs the health endpoints until the context ends.
func Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", LivenessHandler)
	mux.HandleFunc("/readyz", ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.GetLogger().Error().Err(err).Msg("Health server error")
	}
}
