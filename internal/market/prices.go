// internal/market/prices.go
package market

import "strings"

// Price là giá tham khảo của một mặt hàng tại một chợ đầu mối.
type Price struct {
	Crop   string  `json:"crop"`
	Price  float64 `json:"price"`
	Unit   string  `json:"unit"`
	Market string  `json:"market"`
	Change string  `json:"change"`
	Trend  string  `json:"trend"`
}

// Bảng giá tĩnh; nguồn giá thật (sàn nông sản) là collaborator bên ngoài.
var priceBoard = []Price{
	{Crop: "coconut", Price: 85, Unit: "piece", Market: "Thrissur", Change: "+5%", Trend: "up"},
	{Crop: "paddy", Price: 2800, Unit: "quintal", Market: "Palakkad", Change: "+2%", Trend: "up"},
	{Crop: "pepper", Price: 650, Unit: "kg", Market: "Kochi", Change: "-3%", Trend: "down"},
	{Crop: "banana", Price: 45, Unit: "dozen", Market: "Kozhikode", Change: "0%", Trend: "stable"},
	{Crop: "rubber", Price: 180, Unit: "kg", Market: "Kottayam", Change: "+8%", Trend: "up"},
}

// Prices lọc bảng giá theo cây trồng và/hoặc chợ (district). Chuỗi rỗng
// nghĩa là không lọc.
func Prices(crop, district string) []Price {
	out := []Price{}
	for _, p := range priceBoard {
		if crop != "" && !strings.EqualFold(p.Crop, crop) {
			continue
		}
		if district != "" && !strings.EqualFold(p.Market, district) {
			continue
		}
		out = append(out, p)
	}
	return out
}
