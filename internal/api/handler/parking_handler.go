package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parking_mcp/internal/domain"
	"parking_mcp/internal/service"
)

type ParkingHandler struct {
	parkingService service.ParkingService
	logger         *slog.Logger
}

func NewParkingHandler(ps service.ParkingService, logger *slog.Logger) *ParkingHandler {
	return &ParkingHandler{parkingService: ps, logger: logger}
}

// POST /parking/nearby
func (h *ParkingHandler) FindNearby(c *gin.Context) {
	var req domain.NearbyParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Radius <= 0 {
		req.Radius = 1.0
	}

	// run_id 目前只寫進 log，之後可回傳給呼叫端或往下游傳遞
	runID := uuid.New().String()
	log := h.logger.With(slog.String("run_id", runID))
	log.Info("查詢附近停車場", "address", req.Address, "radius", req.Radius)

	result, err := h.parkingService.FindNearbyParkingLots(c.Request.Context(), req.Address, req.Radius)
	if err != nil {
		log.Error("查詢附近停車場失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"parking_lots": result.Data.ParkingLots,
		"message":      fmt.Sprintf("已為您找到%d個停車場，搜尋範圍：%.1f公里", len(result.Data.ParkingLots), req.Radius),
	})
}

// POST /parking/info
func (h *ParkingHandler) GetInfo(c *gin.Context) {
	var req domain.ParkingLotInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.New().String()
	log := h.logger.With(slog.String("run_id", runID))
	log.Info("查詢停車場詳情", "parking_lot_id", req.ParkingLotID)

	result, err := h.parkingService.ParkingLotDetails(c.Request.Context(), req.ParkingLotID)
	if err != nil {
		log.Error("查詢停車場詳情失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"parking_lot_info": result.Data,
		"message":          fmt.Sprintf("已獲取停車場 %s 的詳細資訊", req.ParkingLotID),
	})
}
