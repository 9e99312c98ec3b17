package service

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"parking_mcp/internal/domain"
)

const notFoundMessage = "找不到該停車場資訊"

// catalogEntry 固定目錄中的停車場骨架，distance / available_spaces
// 在每次請求時重新產生
type catalogEntry struct {
	lot          domain.ParkingLot
	maxAvailable int
}

var catalog = []catalogEntry{
	{
		lot: domain.ParkingLot{
			ParkingLotID:   "P001",
			ParkingLotName: "MYSPACE富邦金融中心停車場",
			Address:        "台北市信義區松仁路100號B2-B5",
			TotalSpaces:    200,
			HourlyRate:     60,
			Coordinates:    domain.Coordinates{Latitude: 25.0330, Longitude: 121.5654},
		},
		maxAvailable: 100,
	},
	{
		lot: domain.ParkingLot{
			ParkingLotID:   "P002",
			ParkingLotName: "信義威秀停車場",
			Address:        "台北市信義區松壽路18號B1-B4",
			TotalSpaces:    300,
			HourlyRate:     50,
			Coordinates:    domain.Coordinates{Latitude: 25.0359, Longitude: 121.5672},
		},
		maxAvailable: 150,
	},
	{
		lot: domain.ParkingLot{
			ParkingLotID:   "P003",
			ParkingLotName: "台北101購物中心停車場",
			Address:        "台北市信義區信義路五段7號B1-B4",
			TotalSpaces:    400,
			HourlyRate:     70,
			Coordinates:    domain.Coordinates{Latitude: 25.0338, Longitude: 121.5645},
		},
		maxAvailable: 200,
	},
	{
		lot: domain.ParkingLot{
			ParkingLotID:   "P004",
			ParkingLotName: "遠東百貨寶慶停車場",
			Address:        "台北市萬華區寶慶路32號B1-B3",
			TotalSpaces:    150,
			HourlyRate:     45,
			Coordinates:    domain.Coordinates{Latitude: 25.0421, Longitude: 121.5067},
		},
		maxAvailable: 80,
	},
	{
		lot: domain.ParkingLot{
			ParkingLotID:   "P005",
			ParkingLotName: "微風廣場停車場",
			Address:        "台北市松山區復興南路一段39號B1-B3",
			TotalSpaces:    250,
			HourlyRate:     55,
			Coordinates:    domain.Coordinates{Latitude: 25.0468, Longitude: 121.5443},
		},
		maxAvailable: 120,
	},
}

// detailCatalog 目前只有 P001 有完整詳情，其餘 ID 一律回 not found。
// 這是刻意的佔位，等真實資料源接上後移除。
var detailCatalog = map[string]struct {
	detail       domain.ParkingLotDetail
	maxAvailable int
}{
	"P001": {
		detail: domain.ParkingLotDetail{
			ParkingLotID:   "P001",
			ParkingLotName: "MYSPACE富邦金融中心停車場",
			Address:        "台北市信義區松仁路100號B2-B5",
			TotalSpaces:    200,
			HourlyRate:     60,
			BusinessHours:  "00:00-24:00",
			Features:       []string{"室內停車場", "電梯", "無障礙設施", "充電樁"},
			PaymentMethods: []string{"現金", "信用卡", "行動支付"},
			Contact:        domain.Contact{Phone: "02-2345-6789", Email: "service@mysbase-parking.com"},
			RealTimeInfo: domain.RealTimeInfo{
				IsOpen:            true,
				CongestionLevel:   "中等",
				EstimatedWaitTime: "5分鐘",
			},
		},
		maxAvailable: 200,
	},
}

// MockParkingService 以固定目錄加上隨機欄位模擬停車場資料源
type MockParkingService struct {
	mu      sync.Mutex
	rng     *rand.Rand
	latency time.Duration
}

// NewMockParkingService 建立 Mock 服務。rng 傳 nil 時以當前時間播種；
// 測試可注入固定種子的 rng 與零延遲。
func NewMockParkingService(rng *rand.Rand, latency time.Duration) *MockParkingService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockParkingService{rng: rng, latency: latency}
}

var _ ParkingService = (*MockParkingService)(nil)
var _ ParkingService = (*RealParkingService)(nil)

func (s *MockParkingService) FindNearbyParkingLots(ctx context.Context, address string, radius float64) (*domain.NearbyResult, error) {
	time.Sleep(s.latency) // 模擬外部 API 延遲

	lots := make([]domain.ParkingLot, len(catalog))
	for i, entry := range catalog {
		lot := entry.lot
		lot.Distance = s.randomDistance(radius)
		lot.AvailableSpaces = s.randomSpaces(entry.maxAvailable)
		lots[i] = lot
	}

	// 依距離排序，距離相同時保持目錄順序
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].Distance < lots[j].Distance
	})

	return &domain.NearbyResult{
		Code:    200,
		Message: "success",
		Data: domain.NearbyData{
			SearchAddress: address,
			Radius:        radius,
			ParkingLots:   lots,
			Total:         len(lots),
		},
	}, nil
}

func (s *MockParkingService) ParkingLotDetails(ctx context.Context, parkingLotID string) (*domain.DetailResult, error) {
	time.Sleep(s.latency) // 模擬外部 API 延遲

	entry, ok := detailCatalog[parkingLotID]
	if !ok {
		return &domain.DetailResult{
			Code:    200,
			Message: "success",
			Data: domain.ParkingLotNotFound{
				Error:        notFoundMessage,
				ParkingLotID: parkingLotID,
			},
		}, nil
	}

	detail := entry.detail
	detail.AvailableSpaces = s.randomSpaces(entry.maxAvailable)

	return &domain.DetailResult{
		Code:    200,
		Message: "success",
		Data:    &detail,
	}, nil
}

// randomDistance 在 [0.1, radius] 均勻取值並四捨五入到小數點後兩位。
// radius 小於 0.1 時下界收斂到 radius。
func (s *MockParkingService) randomDistance(radius float64) float64 {
	lo := 0.1
	if radius < lo {
		lo = radius
	}
	s.mu.Lock()
	d := lo + s.rng.Float64()*(radius-lo)
	s.mu.Unlock()
	return math.Round(d*100) / 100
}

func (s *MockParkingService) randomSpaces(max int) int {
	s.mu.Lock()
	n := s.rng.Intn(max + 1)
	s.mu.Unlock()
	return n
}
