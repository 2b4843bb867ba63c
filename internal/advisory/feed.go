// internal/advisory/feed.go
package advisory

import (
	"sort"
	"time"

	"krishi-sakhi-api-server/internal/models"
)

// DefaultAlertTTL là tuổi thọ của một cảnh báo kể từ lúc tạo.
const DefaultAlertTTL = 7 * 24 * time.Hour

// FeedFilter là các bộ lọc tùy chọn khi liệt kê cảnh báo.
type FeedFilter struct {
	Type       models.AlertType
	Priority   models.AlertPriority
	UnreadOnly bool
}

// VisibleAlerts loại bỏ cảnh báo đã soft-delete hoặc đã hết hạn.
// Expiry is applied at read time; there is no background sweep.
func VisibleAlerts(alerts []models.Alert, now time.Time) []models.Alert {
	out := []models.Alert{}
	for _, a := range alerts {
		if a.IsActive && a.ExpiresAt.After(now) {
			out = append(out, a)
		}
	}
	return out
}

// FilterFeed áp dụng các bộ lọc tùy chọn.
func FilterFeed(alerts []models.Alert, f FeedFilter) []models.Alert {
	out := []models.Alert{}
	for _, a := range alerts {
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Priority != "" && a.Priority != f.Priority {
			continue
		}
		if f.UnreadOnly && a.IsRead {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortFeed sắp xếp theo ưu tiên cố định high → medium → low, trong cùng mức
// ưu tiên thì mới nhất trước.
func SortFeed(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alerts[i].Priority.Rank(), alerts[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}

// PageOf cắt trang 1-based. Trang vượt quá cuối danh sách trả về rỗng.
func PageOf(alerts []models.Alert, page, limit int) []models.Alert {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(alerts) {
		return []models.Alert{}
	}
	end := start + limit
	if end > len(alerts) {
		end = len(alerts)
	}
	return alerts[start:end]
}

// UnreadCount đếm số cảnh báo chưa đọc.
func UnreadCount(alerts []models.Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.IsRead {
			n++
		}
	}
	return n
}
