package advisory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-sakhi-api-server/internal/models"
)

var feedNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func feedAlert(priority models.AlertPriority, createdAt time.Time) models.Alert {
	return models.Alert{
		UserID:    "user-1",
		Type:      models.AlertWeather,
		Priority:  priority,
		Title:     "Weather Alert",
		Message:   "Rain expected",
		IsActive:  true,
		ExpiresAt: createdAt.Add(DefaultAlertTTL),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestVisibleAlerts(t *testing.T) {
	fresh := feedAlert(models.PriorityHigh, feedNow.Add(-time.Hour))
	expired := feedAlert(models.PriorityHigh, feedNow.Add(-8*24*time.Hour))
	deleted := feedAlert(models.PriorityLow, feedNow.Add(-time.Hour))
	deleted.IsActive = false

	t.Run("expired alerts are excluded even when active and unread", func(t *testing.T) {
		require.True(t, expired.IsActive)
		require.False(t, expired.IsRead)
		visible := VisibleAlerts([]models.Alert{fresh, expired}, feedNow)
		assert.Len(t, visible, 1)
		assert.Equal(t, fresh.CreatedAt, visible[0].CreatedAt)
	})

	t.Run("soft-deleted alerts are excluded", func(t *testing.T) {
		visible := VisibleAlerts([]models.Alert{fresh, deleted}, feedNow)
		assert.Len(t, visible, 1)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		onBoundary := feedAlert(models.PriorityHigh, feedNow.Add(-DefaultAlertTTL))
		require.Equal(t, feedNow, onBoundary.ExpiresAt)
		assert.Empty(t, VisibleAlerts([]models.Alert{onBoundary}, feedNow))
	})
}

func TestFilterFeed(t *testing.T) {
	pest := feedAlert(models.PriorityHigh, feedNow)
	pest.Type = models.AlertPest
	read := feedAlert(models.PriorityLow, feedNow)
	read.IsRead = true
	weather := feedAlert(models.PriorityMedium, feedNow)

	all := []models.Alert{pest, read, weather}

	t.Run("no filter returns everything", func(t *testing.T) {
		assert.Len(t, FilterFeed(all, FeedFilter{}), 3)
	})

	t.Run("by type", func(t *testing.T) {
		out := FilterFeed(all, FeedFilter{Type: models.AlertPest})
		require.Len(t, out, 1)
		assert.Equal(t, models.AlertPest, out[0].Type)
	})

	t.Run("by priority", func(t *testing.T) {
		out := FilterFeed(all, FeedFilter{Priority: models.PriorityMedium})
		require.Len(t, out, 1)
		assert.Equal(t, models.PriorityMedium, out[0].Priority)
	})

	t.Run("unread only", func(t *testing.T) {
		out := FilterFeed(all, FeedFilter{UnreadOnly: true})
		assert.Len(t, out, 2)
	})
}

func TestSortFeed(t *testing.T) {
	oldHigh := feedAlert(models.PriorityHigh, feedNow.Add(-3*time.Hour))
	newHigh := feedAlert(models.PriorityHigh, feedNow.Add(-1*time.Hour))
	medium := feedAlert(models.PriorityMedium, feedNow)
	low := feedAlert(models.PriorityLow, feedNow)

	alerts := []models.Alert{low, oldHigh, medium, newHigh}
	SortFeed(alerts)

	require.Len(t, alerts, 4)
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, models.PriorityHigh, alerts[1].Priority)
	assert.Equal(t, models.PriorityMedium, alerts[2].Priority)
	assert.Equal(t, models.PriorityLow, alerts[3].Priority)

	// Trong cùng mức ưu tiên: mới nhất trước.
	assert.True(t, alerts[0].CreatedAt.After(alerts[1].CreatedAt))
}

func TestPageOf(t *testing.T) {
	alerts := make([]models.Alert, 45)
	for i := range alerts {
		a := feedAlert(models.PriorityMedium, feedNow.Add(time.Duration(i)*time.Minute))
		a.Title = fmt.Sprintf("alert-%d", i)
		alerts[i] = a
	}

	t.Run("full first and second pages", func(t *testing.T) {
		assert.Len(t, PageOf(alerts, 1, 20), 20)
		assert.Len(t, PageOf(alerts, 2, 20), 20)
	})

	t.Run("partial last page", func(t *testing.T) {
		page := PageOf(alerts, 3, 20)
		require.Len(t, page, 5)
		assert.Equal(t, "alert-40", page[0].Title)
	})

	t.Run("past the end returns empty, not error", func(t *testing.T) {
		assert.Empty(t, PageOf(alerts, 4, 20))
		assert.Empty(t, PageOf(alerts, 100, 20))
	})

	t.Run("defaults for out-of-range parameters", func(t *testing.T) {
		assert.Len(t, PageOf(alerts, 0, 0), 20)
		assert.Len(t, PageOf(alerts, -1, -5), 20)
	})
}

func TestUnreadCount(t *testing.T) {
	a := feedAlert(models.PriorityHigh, feedNow)
	b := feedAlert(models.PriorityLow, feedNow)
	b.IsRead = true

	assert.Equal(t, 1, UnreadCount([]models.Alert{a, b}))
	assert.Equal(t, 0, UnreadCount([]models.Alert{b}))
	assert.Equal(t, 0, UnreadCount(nil))
}
