package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByLocation(t *testing.T) {
	svc := NewService()

	t.Run("report echoes the location", func(t *testing.T) {
		report := svc.GetByLocation("Thrissur", 5)
		assert.Equal(t, "Thrissur", report.Location)
		assert.Equal(t, "partly_cloudy", report.Current.Condition)
	})

	t.Run("forecast has the requested length", func(t *testing.T) {
		for _, days := range []int{1, 3, 7} {
			report := svc.GetByLocation("Palakkad", days)
			assert.Len(t, report.Forecast, days)
		}
	})

	t.Run("days below one is clamped to one", func(t *testing.T) {
		report := svc.GetByLocation("Palakkad", 0)
		assert.Len(t, report.Forecast, 1)
	})

	t.Run("forecast values stay in range", func(t *testing.T) {
		report := svc.GetByLocation("Kochi", 7)
		require.Len(t, report.Forecast, 7)
		for _, day := range report.Forecast {
			assert.GreaterOrEqual(t, day.MaxTemp, 30.0)
			assert.Less(t, day.MaxTemp, 35.0)
			assert.GreaterOrEqual(t, day.MinTemp, 22.0)
			assert.Less(t, day.MinTemp, 25.0)
			assert.GreaterOrEqual(t, day.Humidity, 70.0)
			assert.Contains(t, conditions, day.Condition)

			_, err := time.Parse("2006-01-02", day.Date)
			assert.NoError(t, err)
		}
	})
}
