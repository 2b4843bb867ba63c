// internal/weather/service.go
package weather

import (
	"math/rand"
	"time"
)

// Current là thời tiết hiện tại của một địa điểm.
type Current struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	WindSpeed   float64 `json:"windSpeed"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}

// ForecastDay là dự báo cho một ngày.
type ForecastDay struct {
	Date     string  `json:"date"`
	MaxTemp  float64 `json:"maxTemp"`
	MinTemp  float64 `json:"minTemp"`
	Humidity float64 `json:"humidity"`
	Rainfall float64 `json:"rainfall"`
	Condition string `json:"condition"`
}

// Report là payload trả về cho client.
type Report struct {
	Location string        `json:"location"`
	Current  Current       `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

var conditions = []string{"sunny", "partly_cloudy", "cloudy", "rainy"}

// Service là nguồn thời tiết giả lập. Nguồn thật (OpenWeatherMap, IMD) là
// collaborator bên ngoài; service này giữ đúng hình dạng JSON của nó.
type Service struct {
	rng *rand.Rand
}

func NewService() *Service {
	return &Service{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// GetByLocation trả về thời tiết hiện tại kèm dự báo `days` ngày.
func (s *Service) GetByLocation(location string, days int) Report {
	if days < 1 {
		days = 1
	}

	report := Report{
		Location: location,
		Current: Current{
			Temperature: 28,
			Humidity:    75,
			Rainfall:    0,
			WindSpeed:   12,
			Condition:   "partly_cloudy",
			Description: "Partly cloudy with chance of rain",
		},
		Forecast: make([]ForecastDay, 0, days),
	}

	for i := 0; i < days; i++ {
		report.Forecast = append(report.Forecast, ForecastDay{
			Date:      time.Now().AddDate(0, 0, i).Format("2006-01-02"),
			MaxTemp:   30 + s.rng.Float64()*5,
			MinTemp:   22 + s.rng.Float64()*3,
			Humidity:  70 + s.rng.Float64()*20,
			Rainfall:  s.rng.Float64() * 10,
			Condition: conditions[s.rng.Intn(len(conditions))],
		})
	}

	return report
}
