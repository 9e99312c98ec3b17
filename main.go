package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking_mcp/internal/api"
	"parking_mcp/internal/config"
	"parking_mcp/internal/logger"
	"parking_mcp/internal/mcp"
	"parking_mcp/internal/service"
)

func main() {
	// 1. 載入設定
	cfg := config.Load()

	// 2. 初始化 logger
	log := logger.New(cfg.LogLevel)
	log.Info("設定已載入", "port", cfg.ServerPort, "base_url", cfg.BaseURL)

	// 3. 初始化停車場服務（目前只有 Mock，真實資料源接上後改用
	//    service.NewRealParkingService）
	parkingService := service.NewMockParkingService(nil, cfg.MockLatency)

	// 4. 初始化 MCP toolset
	toolServer := mcp.NewParkingToolServer(parkingService, log)

	// 5. 建立 HTTP router
	router := api.SetupRouter(parkingService, toolServer, cfg.BaseURL, log)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: router,
	}

	go func() {
		log.Info("Server 啟動", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ListenAndServe 失敗", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("正在關閉 server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server 關閉失敗", "error", err)
		os.Exit(1)
	}

	log.Info("Server 已關閉")
}
