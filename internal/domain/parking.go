package domain

// Coordinates 停車場座標
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParkingLot 附近搜尋回傳的停車場摘要。distance 與 available_spaces
// 每次請求重新產生，不會跨請求保留。
type ParkingLot struct {
	ParkingLotID    string      `json:"parking_lot_id"`
	ParkingLotName  string      `json:"parking_lot_name"`
	Address         string      `json:"address"`
	Distance        float64     `json:"distance"`
	AvailableSpaces int         `json:"available_spaces"`
	TotalSpaces     int         `json:"total_spaces"`
	HourlyRate      int         `json:"hourly_rate"`
	Coordinates     Coordinates `json:"coordinates"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type RealTimeInfo struct {
	IsOpen            bool   `json:"is_open"`
	CongestionLevel   string `json:"congestion_level"`
	EstimatedWaitTime string `json:"estimated_wait_time"`
}

// ParkingLotDetail 詳情查詢回傳的完整停車場資訊
type ParkingLotDetail struct {
	ParkingLotID    string       `json:"parking_lot_id"`
	ParkingLotName  string       `json:"parking_lot_name"`
	Address         string       `json:"address"`
	AvailableSpaces int          `json:"available_spaces"`
	TotalSpaces     int          `json:"total_spaces"`
	HourlyRate      int          `json:"hourly_rate"`
	BusinessHours   string       `json:"business_hours"`
	Features        []string     `json:"features"`
	PaymentMethods  []string     `json:"payment_methods"`
	Contact         Contact      `json:"contact"`
	RealTimeInfo    RealTimeInfo `json:"real_time_info"`
}

// ParkingLotNotFound 查無停車場時的資料層錯誤標記，
// 外層 envelope 仍然是 success。
type ParkingLotNotFound struct {
	Error        string `json:"error"`
	ParkingLotID string `json:"parking_lot_id"`
}

type NearbyData struct {
	SearchAddress string       `json:"search_address"`
	Radius        float64      `json:"radius"`
	ParkingLots   []ParkingLot `json:"parking_lots"`
	Total         int          `json:"total"`
}

type NearbyResult struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    NearbyData `json:"data"`
}

// DetailResult 的 Data 是 *ParkingLotDetail 或 ParkingLotNotFound
type DetailResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type NearbyParkingRequest struct {
	Address string  `json:"address" binding:"required"`
	Radius  float64 `json:"radius"`
}

type ParkingLotInfoRequest struct {
	ParkingLotID string `json:"parking_lot_id" binding:"required"`
}
