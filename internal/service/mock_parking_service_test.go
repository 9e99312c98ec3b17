package service_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"parking_mcp/internal/domain"
	"parking_mcp/internal/service"
)

// 目錄中每個停車場的可用車位上限（附近搜尋用）
var availableBounds = map[string]int{
	"P001": 100,
	"P002": 150,
	"P003": 200,
	"P004": 80,
	"P005": 120,
}

func newTestService(seed int64) *service.MockParkingService {
	return service.NewMockParkingService(rand.New(rand.NewSource(seed)), 0)
}

func TestFindNearbySortedAndBounded(t *testing.T) {
	svc := newTestService(1)

	for _, radius := range []float64{0.5, 1.0, 2.0, 5.0} {
		result, err := svc.FindNearbyParkingLots(context.Background(), "台北101", radius)
		require.NoError(t, err)
		require.Equal(t, 200, result.Code)
		require.Equal(t, "success", result.Message)
		require.Equal(t, "台北101", result.Data.SearchAddress)
		require.Equal(t, radius, result.Data.Radius)
		require.Len(t, result.Data.ParkingLots, 5)
		require.Equal(t, 5, result.Data.Total)

		for i, lot := range result.Data.ParkingLots {
			require.GreaterOrEqual(t, lot.Distance, 0.1)
			require.LessOrEqual(t, lot.Distance, radius)
			bound, ok := availableBounds[lot.ParkingLotID]
			require.True(t, ok, "未知的停車場 ID: %s", lot.ParkingLotID)
			require.GreaterOrEqual(t, lot.AvailableSpaces, 0)
			require.LessOrEqual(t, lot.AvailableSpaces, bound)
			require.LessOrEqual(t, lot.AvailableSpaces, lot.TotalSpaces)
			if i > 0 {
				require.LessOrEqual(t, result.Data.ParkingLots[i-1].Distance, lot.Distance)
			}
		}
	}
}

func TestFindNearbyStableCatalog(t *testing.T) {
	svc := newTestService(7)

	ids := func(lots []domain.ParkingLot) map[string]bool {
		m := make(map[string]bool, len(lots))
		for _, lot := range lots {
			m[lot.ParkingLotID] = true
		}
		return m
	}

	first, err := svc.FindNearbyParkingLots(context.Background(), "信義區", 1.0)
	require.NoError(t, err)

	// 距離與車位數每次重抽，但停車場集合固定不變
	for i := 0; i < 10; i++ {
		result, err := svc.FindNearbyParkingLots(context.Background(), "信義區", 1.0)
		require.NoError(t, err)
		require.Equal(t, ids(first.Data.ParkingLots), ids(result.Data.ParkingLots))
	}
}

func TestParkingLotDetailsKnown(t *testing.T) {
	svc := newTestService(42)

	for i := 0; i < 5; i++ {
		result, err := svc.ParkingLotDetails(context.Background(), "P001")
		require.NoError(t, err)
		require.Equal(t, 200, result.Code)
		require.Equal(t, "success", result.Message)

		detail, ok := result.Data.(*domain.ParkingLotDetail)
		require.True(t, ok, "Data 應為 *ParkingLotDetail, got %T", result.Data)
		require.Equal(t, "P001", detail.ParkingLotID)
		require.NotEmpty(t, detail.BusinessHours)
		require.NotEmpty(t, detail.Features)
		require.NotEmpty(t, detail.PaymentMethods)
		require.GreaterOrEqual(t, detail.AvailableSpaces, 0)
		require.LessOrEqual(t, detail.AvailableSpaces, 200)
	}
}

func TestParkingLotDetailsNotFound(t *testing.T) {
	svc := newTestService(42)

	result, err := svc.ParkingLotDetails(context.Background(), "P999")
	require.NoError(t, err)
	require.Equal(t, 200, result.Code)
	require.Equal(t, "success", result.Message)

	notFound, ok := result.Data.(domain.ParkingLotNotFound)
	require.True(t, ok, "Data 應為 ParkingLotNotFound, got %T", result.Data)
	require.NotEmpty(t, notFound.Error)
	require.Equal(t, "P999", notFound.ParkingLotID)
}

func TestRealServiceNotImplemented(t *testing.T) {
	svc := service.NewRealParkingService(service.ProviderConfig{BaseURL: "https://provider.example.com"})

	_, err := svc.FindNearbyParkingLots(context.Background(), "台北101", 1.0)
	require.ErrorIs(t, err, service.ErrNotImplemented)

	_, err = svc.ParkingLotDetails(context.Background(), "P001")
	require.ErrorIs(t, err, service.ErrNotImplemented)
}
