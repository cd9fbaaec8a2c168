package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wallet-analyzer/internal/balance"
	"wallet-analyzer/internal/chains"
	"wallet-analyzer/internal/config"
	"wallet-analyzer/internal/emitters"
	"wallet-analyzer/internal/events"
	"wallet-analyzer/internal/health"
	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/logger"
	"wallet-analyzer/internal/risk"
	mcpserver "wallet-analyzer/internal/server"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		logger.GetLogger().Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)
	log := logger.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := chains.NewRegistry(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Blockchain connection failed")
	}
	defer registry.Close()
	log.Info().Msg("All blockchain connections verified")

	var sink interfaces.EventEmitter
	if cfg.Kafka.BrokerAddress != "" {
		kafkaEmitter := emitters.NewKafkaEmitter(cfg.Kafka.BrokerAddress, cfg.Kafka.Topic)
		defer func() {
			_ = kafkaEmitter.Close()
		}()
		sink = kafkaEmitter
	}
	emitter := &events.LogEmitter{WrappedEmitter: sink}

	if cfg.HealthAddr != "" {
		for _, chain := range registry.Chains() {
			if client, ok := registry.Client(chain); ok {
				health.RegisterChain(ctx, client)
			}
		}
		health.SetReady(true)
		go health.Serve(ctx, cfg.HealthAddr)
	}

	balances := balance.NewService(registry, log)
	risks := risk.NewAnalyzer(balances, cfg.Risk, log)
	handlers := mcpserver.NewHandlers(balances, risks, emitter)
	s := mcpserver.New(handlers)

	log.Info().Msg("Starting MCP server: crypto balance analyzer")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(s)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Server stopped by user")
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("MCP server error")
		}
		log.Info().Msg("MCP server shut down")
	}
}
