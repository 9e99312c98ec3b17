package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerHost string
	ServerPort string
	BaseURL    string // MCP client 連線用的對外位址
	LogLevel   string

	MockLatency time.Duration // 模擬外部 API 延遲

	// 未來真實資料供應商的設定，目前未使用
	ProviderBaseURL string
	ProviderAPIKey  string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("警告：無法載入 .env 檔案: %v", err)
	}

	latencyMs, _ := strconv.Atoi(getEnv("MOCK_LATENCY_MS", "100"))

	return &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8002"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8002"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MockLatency: time.Duration(latencyMs) * time.Millisecond,

		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", ""),
		ProviderAPIKey:  getEnv("PROVIDER_API_KEY", ""),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
