// internal/advisory/intent.go
package advisory

import (
	"fmt"
	"strings"
	"time"

	"krishi-sakhi-api-server/internal/models"
)

// Topic là chủ đề tư vấn mà bộ phân loại có thể nhận ra.
type Topic string

const (
	TopicPest       Topic = "pest"
	TopicWeather    Topic = "weather"
	TopicPrice      Topic = "price"
	TopicFertilizer Topic = "fertilizer"
	TopicIrrigation Topic = "irrigation"
	TopicHarvest    Topic = "harvest"
	TopicFarming    Topic = "farming"
	TopicUnknown    Topic = ""
)

// Reply là câu trả lời tư vấn đã được nội suy theo hồ sơ.
type Reply struct {
	Topic     Topic     `json:"topic"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// intentRule ánh xạ một tập từ khóa song ngữ (EN/ML) tới một mẫu trả lời.
// Rules are evaluated strictly in slice order; the first match wins, so the
// response for a given input is deterministic.
type intentRule struct {
	Topic    Topic
	Keywords []string
	Respond  func(farm *models.Farm) string
}

var intentRules = []intentRule{
	{
		Topic:    TopicPest,
		Keywords: []string{"pest", "bug", "insect", "കീടം", "പുഴു"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "I recommend checking for common pests in your crops. Use neem oil spray in the evening for natural pest control. Inspect plants regularly and remove affected parts immediately."
			}
			return fmt.Sprintf("For your %s crop, I recommend checking for common pests. Use neem oil spray in the evening. Avoid spraying during rain or strong sunlight. Monitor your plants daily for early detection.", farm.CurrentCrop)
		},
	},
	{
		Topic:    TopicWeather,
		Keywords: []string{"weather", "rain", "കാലാവസ്ഥ", "മഴ"},
		Respond: func(farm *models.Farm) string {
			return "Based on current weather patterns, I recommend checking the local weather forecast before applying fertilizers or pesticides. Rain can wash away treatments and reduce their effectiveness."
		},
	},
	{
		Topic:    TopicPrice,
		Keywords: []string{"price", "market", "വില"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "Market prices vary by location and season. Check with your local agricultural market for current rates."
			}
			return fmt.Sprintf("Current market prices for %s vary by location. I recommend checking with your local agricultural market or cooperative society for the most accurate pricing information.", farm.CurrentCrop)
		},
	},
	{
		Topic:    TopicFertilizer,
		Keywords: []string{"fertilizer", "വളം"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "Organic fertilizers are generally recommended. Apply during cooler parts of the day and avoid application before rain."
			}
			return fmt.Sprintf("For your %s crop in %s soil, I recommend organic fertilizers. Apply during early morning or late evening. Avoid fertilizing before expected rain.", farm.CurrentCrop, farm.SoilType)
		},
	},
	{
		Topic:    TopicIrrigation,
		Keywords: []string{"water", "irrigation", "ജലം", "നനയ്ക്കുക"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "Water your crops during early morning or late evening to reduce evaporation. Maintain consistent soil moisture."
			}
			advice := "Without irrigation facilities, focus on water conservation techniques like mulching."
			if farm.Irrigation {
				advice = "Since you have irrigation facilities, maintain consistent moisture levels."
			}
			return fmt.Sprintf("For your %s crop, water early morning or late evening. %s", farm.CurrentCrop, advice)
		},
	},
	{
		Topic:    TopicHarvest,
		Keywords: []string{"harvest", "വിളവെടുപ്പ്"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "Harvest timing varies by crop and variety. Monitor your crops for maturity indicators and choose dry weather for harvesting."
			}
			return fmt.Sprintf("Harvest timing for %s depends on variety and growing conditions. Look for visual indicators of maturity and harvest during dry weather for better quality.", farm.CurrentCrop)
		},
	},
	{
		Topic:    TopicFarming,
		Keywords: []string{"farming", "agriculture", "കൃഷി"},
		Respond: func(farm *models.Farm) string {
			if farm == nil {
				return "Successful farming requires attention to soil health, proper timing, weather awareness, and sustainable practices. Focus on organic methods when possible."
			}
			return fmt.Sprintf("For successful farming in %s, focus on soil health, proper timing of operations, and integrated pest management. Your %g %s of %s soil has good potential.", farm.Location, farm.LandSize, farm.LandUnit, farm.SoilType)
		},
	},
}

func fallbackResponse(farm *models.Farm) string {
	if farm == nil {
		return "I'm here to help with your farming questions. Please provide more details about your specific concern - whether it's about crops, pests, fertilizers, or other farming practices."
	}
	return fmt.Sprintf("I understand you're asking about your %s farming. Could you please provide more specific details about your concern? I'm here to help with pest management, fertilization, irrigation, and other farming practices.", farm.CurrentCrop)
}

// ClassifyIntent trả về chủ đề đầu tiên (theo thứ tự ưu tiên cố định) có từ
// khóa xuất hiện trong message. Case folding áp dụng cho phần tiếng Anh;
// Malayalam keywords match as-is.
func ClassifyIntent(message string) Topic {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Topic
			}
		}
	}
	return TopicUnknown
}

// RespondTo sinh câu trả lời tư vấn cho một tin nhắn. Pure function of
// (message, farm, now): no store access, no external AI calls. Empty or
// unmatched input falls back to the generic response instead of failing.
func RespondTo(message string, farm *models.Farm, now time.Time) Reply {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower != "" {
		for _, rule := range intentRules {
			for _, kw := range rule.Keywords {
				if strings.Contains(lower, kw) {
					return Reply{Topic: rule.Topic, Content: rule.Respond(farm), Timestamp: now}
				}
			}
		}
	}
	return Reply{Topic: TopicUnknown, Content: fallbackResponse(farm), Timestamp: now}
}
