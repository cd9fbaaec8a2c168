package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"wallet-analyzer/internal/models"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel    string
	HTTPTimeout time.Duration
	HealthAddr  string
	Kafka       KafkaConfig
	Risk        RiskConfig
	Chains      map[models.Chain]ChainConfig
}

// KafkaConfig holds the optional query-event sink configuration. An empty
// broker address disables the sink.
type KafkaConfig struct {
	BrokerAddress string
	Topic         string
}

// RiskConfig holds the text-classification endpoint settings. A missing
// token is not a startup error; it surfaces as an upstream authorization
// failure when analyze_wallet_risk is called.
type RiskConfig struct {
	ModelURL string
	Token    string
	Timeout  time.Duration
}

// ChainConfig holds configuration for each blockchain
type ChainConfig struct {
	RpcEndpoint string
	RateLimit   float64
}

const (
	// The Solana endpoint is a fixed public URL, not configurable.
	solanaEndpoint = "https://api.mainnet-beta.solana.com"

	defaultRiskModelURL = "https://api-inference.huggingface.co/models/ProsusAI/finbert"
)

// rpcEnvKeys maps each EVM chain to its required environment variable.
var rpcEnvKeys = map[models.Chain]string{
	models.Ethereum: "ETH_RPC",
	models.Polygon:  "POL_RPC",
	models.Arbitrum: "ARB_RPC",
}

// Load loads configuration from environment variables. Every EVM chain must
// have its RPC endpoint set; everything else has a default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not fatal, as env vars might be set externally
	}

	config := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPTimeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT", 30)) * time.Second,
		HealthAddr:  getEnv("HEALTH_ADDR", ""),
		Kafka: KafkaConfig{
			BrokerAddress: getEnv("KAFKA_BROKER_ADDRESS", ""),
			Topic:         getEnv("KAFKA_TOPIC", "wallet-queries"),
		},
		Risk: RiskConfig{
			ModelURL: getEnv("RISK_MODEL_URL", defaultRiskModelURL),
			Token:    getEnv("HF_TOKEN", ""),
			Timeout:  time.Duration(getEnvAsInt("RISK_TIMEOUT", 30)) * time.Second,
		},
		Chains: make(map[models.Chain]ChainConfig),
	}

	for _, chain := range models.Chains() {
		if !chain.IsEVM() {
			continue
		}
		key := rpcEnvKeys[chain]
		url := os.Getenv(key)
		if url == "" {
			return nil, fmt.Errorf("missing RPC URL for %s (set %s)", chain, key)
		}
		config.Chains[chain] = ChainConfig{
			RpcEndpoint: url,
			RateLimit:   getEnvAsFloat("EVM_RATE_LIMIT", 4),
		}
	}

	config.Chains[models.Solana] = ChainConfig{
		RpcEndpoint: solanaEndpoint,
		RateLimit:   getEnvAsFloat("SOLANA_RATE_LIMIT", 4),
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float64 or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
