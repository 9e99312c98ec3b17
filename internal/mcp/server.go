// Package mcp 把停車場服務的兩個操作再掛載成 MCP toolset，
// 供 agent 以 tool call 方式呼叫，與 HTTP 端點共用同一個服務實例。
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"parking_mcp/internal/service"
)

const BasePath = "/mcp"

type ParkingToolServer struct {
	parkingService service.ParkingService
	logger         *slog.Logger
}

func NewParkingToolServer(ps service.ParkingService, logger *slog.Logger) *ParkingToolServer {
	return &ParkingToolServer{parkingService: ps, logger: logger}
}

// SSEHandler 建立掛在 BasePath 下的 SSE server，baseURL 是對外位址
func (t *ParkingToolServer) SSEHandler(baseURL string) *server.SSEServer {
	s := server.NewMCPServer("parking", "1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	findTool := mcpgo.NewTool("find_nearby_parking",
		mcpgo.WithDescription("查找附近停車場"),
		mcpgo.WithString("address",
			mcpgo.Required(),
			mcpgo.Description("搜索地址"),
		),
		mcpgo.WithNumber("radius",
			mcpgo.Description("搜索半径（公里）"),
			mcpgo.DefaultNumber(1.0),
		),
	)
	s.AddTool(findTool, t.handleFindNearby)

	infoTool := mcpgo.NewTool("get_parking_info",
		mcpgo.WithDescription("获取停车场详情"),
		mcpgo.WithString("parking_lot_id",
			mcpgo.Required(),
			mcpgo.Description("停車場ID"),
		),
	)
	s.AddTool(infoTool, t.handleGetInfo)

	return server.NewSSEServer(s,
		server.WithBaseURL(baseURL),
		server.WithStaticBasePath(BasePath),
	)
}

func (t *ParkingToolServer) handleFindNearby(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	address, err := req.RequireString("address")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	radius := req.GetFloat("radius", 1.0)
	if radius <= 0 {
		radius = 1.0
	}

	t.logger.Info("tool call: find_nearby_parking", "address", address, "radius", radius)

	result, err := t.parkingService.FindNearbyParkingLots(ctx, address, radius)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	// 與 HTTP 端點相同的回應 envelope
	payload := map[string]any{
		"status":       "success",
		"parking_lots": result.Data.ParkingLots,
		"message":      fmt.Sprintf("已為您找到%d個停車場，搜尋範圍：%.1f公里", len(result.Data.ParkingLots), radius),
	}
	return toolResultJSON(payload)
}

func (t *ParkingToolServer) handleGetInfo(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	parkingLotID, err := req.RequireString("parking_lot_id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	t.logger.Info("tool call: get_parking_info", "parking_lot_id", parkingLotID)

	result, err := t.parkingService.ParkingLotDetails(ctx, parkingLotID)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	payload := map[string]any{
		"status":           "success",
		"parking_lot_info": result.Data,
		"message":          fmt.Sprintf("已獲取停車場 %s 的詳細資訊", parkingLotID),
	}
	return toolResultJSON(payload)
}

func toolResultJSON(payload any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("無法序列化 tool 回應: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}
