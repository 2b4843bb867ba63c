// internal/advisory/alerts.go
package advisory

import (
	"fmt"
	"time"

	"krishi-sakhi-api-server/internal/models"
)

// GeneratorConfig chứa các tham số theo mùa của bộ sinh cảnh báo.
// The monsoon window is configuration, not a constant: the June–October
// default is Kerala's climate calendar and nothing else.
type GeneratorConfig struct {
	MonsoonStart time.Month
	MonsoonEnd   time.Month
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MonsoonStart: time.June,
		MonsoonEnd:   time.October,
	}
}

// cropAlertTemplate là cảnh báo riêng cho từng loại cây trồng.
type cropAlertTemplate struct {
	Type     models.AlertType
	Priority models.AlertPriority
	Title    string
	Message  string
}

// Cây trồng không có trong bảng thì không sinh cảnh báo riêng. Intentional,
// not an error.
var cropAlerts = map[models.Crop]cropAlertTemplate{
	models.CropPaddy: {
		Type:     models.AlertIrrigation,
		Priority: models.PriorityMedium,
		Title:    "Irrigation Reminder",
		Message:  "Maintain water level in paddy fields. Check for proper drainage.",
	},
	models.CropCoconut: {
		Type:     models.AlertPest,
		Priority: models.PriorityMedium,
		Title:    "Pest Alert",
		Message:  "Check coconut trees for red palm weevil infestation. Look for holes in trunk.",
	},
	models.CropBrinjal: {
		Type:     models.AlertPest,
		Priority: models.PriorityHigh,
		Title:    "Pest Alert",
		Message:  "Brinjal shoot and fruit borer activity reported in your area. Check plants regularly.",
	},
}

// GenerateAlerts sinh danh sách cảnh báo nháp từ hồ sơ trang trại.
// Mọi rule khớp đều được phát (union, không phải first-match). Drafts carry
// no id or timestamps; the alert feed assigns those at insertion. Caller
// must guarantee the farm profile exists.
func GenerateAlerts(farm models.Farm, now time.Time, cfg GeneratorConfig) []models.Alert {
	alerts := []models.Alert{}

	draft := func(t models.AlertType, p models.AlertPriority, title, message string) models.Alert {
		return models.Alert{
			Type:     t,
			Priority: p,
			Title:    title,
			Message:  message,
			Location: farm.Location,
			Crop:     string(farm.CurrentCrop),
			IsActive: true,
		}
	}

	// 1. Cảnh báo thời tiết, luôn phát.
	alerts = append(alerts, draft(
		models.AlertWeather, models.PriorityHigh, "Weather Alert",
		fmt.Sprintf("Rain expected in %s area. Avoid applying fertilizers or pesticides today.", farm.Location),
	))

	// 2. Cảnh báo theo cây trồng.
	if tpl, ok := cropAlerts[farm.CurrentCrop]; ok {
		alerts = append(alerts, draft(tpl.Type, tpl.Priority, tpl.Title, tpl.Message))
	}

	// 3. Cảnh báo theo loại đất.
	if farm.SoilType == models.SoilLaterite {
		alerts = append(alerts, draft(
			models.AlertFertilizer, models.PriorityMedium, "Soil Management",
			"Laterite soil requires organic matter. Consider adding compost or green manure.",
		))
	}

	// 4. Cảnh báo theo mùa mưa.
	if inMonsoonWindow(now.Month(), cfg) {
		alerts = append(alerts, draft(
			models.AlertWeather, models.PriorityMedium, "Monsoon Advisory",
			"Monsoon season: Ensure proper drainage and watch for fungal diseases.",
		))
	}

	// 5. Nhắc chương trình hỗ trợ, luôn phát.
	alerts = append(alerts, draft(
		models.AlertScheme, models.PriorityLow, "Government Scheme",
		"Kerala Farmer Assistance Scheme applications are open. Apply before the deadline.",
	))

	return alerts
}

func inMonsoonWindow(m time.Month, cfg GeneratorConfig) bool {
	if cfg.MonsoonStart <= cfg.MonsoonEnd {
		return m >= cfg.MonsoonStart && m <= cfg.MonsoonEnd
	}
	// Window wrapping the year end, e.g. November–February.
	return m >= cfg.MonsoonStart || m <= cfg.MonsoonEnd
}
