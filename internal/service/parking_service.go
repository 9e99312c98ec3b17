package service

import (
	"context"
	"errors"

	"parking_mcp/internal/domain"
)

// ErrNotImplemented 真實資料源尚未串接
var ErrNotImplemented = errors.New("停車場資料源尚未實作")

// ParkingService 停車場服務介面：Mock 實作與未完成的真實實作共用
type ParkingService interface {
	FindNearbyParkingLots(ctx context.Context, address string, radius float64) (*domain.NearbyResult, error)
	ParkingLotDetails(ctx context.Context, parkingLotID string) (*domain.DetailResult, error)
}

// ProviderConfig 未來真實資料供應商的連線設定。
// 供應商的介面規格還沒定案，這裡只保留最基本的欄位。
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

// RealParkingService 真實實作的佔位：所有操作回傳 ErrNotImplemented
type RealParkingService struct {
	cfg ProviderConfig
}

func NewRealParkingService(cfg ProviderConfig) *RealParkingService {
	return &RealParkingService{cfg: cfg}
}

func (s *RealParkingService) FindNearbyParkingLots(ctx context.Context, address string, radius float64) (*domain.NearbyResult, error) {
	return nil, ErrNotImplemented
}

func (s *RealParkingService) ParkingLotDetails(ctx context.Context, parkingLotID string) (*domain.DetailResult, error) {
	return nil, ErrNotImplemented
}
