package advisory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"krishi-sakhi-api-server/internal/models"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Topic
	}{
		{"My brinjal has pests", TopicPest},
		{"Will it RAIN tomorrow?", TopicWeather},
		{"what is the market price of coconut", TopicPrice},
		{"which fertilizer should I use", TopicFertilizer},
		{"how often should I water the plants", TopicIrrigation},
		{"when can I harvest", TopicHarvest},
		{"general farming advice please", TopicFarming},
		{"കീടം പ്രശ്നം ഉണ്ട്", TopicPest},
		{"കാലാവസ്ഥ എങ്ങനെ", TopicWeather},
		{"വില എത്രയാണ്", TopicPrice},
		{"വളം വേണോ", TopicFertilizer},
		{"നനയ്ക്കുക വേണോ", TopicIrrigation},
		{"വിളവെടുപ്പ് എപ്പോൾ", TopicHarvest},
		{"കൃഷി സഹായം", TopicFarming},
		{"asdfgh", TopicUnknown},
		{"", TopicUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyIntent(tc.message))
		})
	}
}

func TestClassifyIntent_FirstRuleWins(t *testing.T) {
	// Tin nhắn chứa từ khóa của cả pest lẫn weather: pest đứng trước nên thắng.
	assert.Equal(t, TopicPest, ClassifyIntent("will rain bring more insects"))
}

func TestRespondTo_WithProfile(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	farm := testFarm(models.CropBrinjal, models.SoilLaterite)

	t.Run("pest response interpolates the crop", func(t *testing.T) {
		reply := RespondTo("My brinjal has pests", &farm, now)
		assert.Equal(t, TopicPest, reply.Topic)
		assert.Contains(t, reply.Content, "brinjal")
		assert.Equal(t, now, reply.Timestamp)
	})

	t.Run("fertilizer response carries crop and soil", func(t *testing.T) {
		reply := RespondTo("suggest a fertilizer", &farm, now)
		assert.Equal(t, TopicFertilizer, reply.Topic)
		assert.Contains(t, reply.Content, "brinjal")
		assert.Contains(t, reply.Content, "laterite")
	})

	t.Run("irrigation response depends on the irrigation flag", func(t *testing.T) {
		withIrrigation := farm
		withIrrigation.Irrigation = true
		reply := RespondTo("how much water?", &withIrrigation, now)
		assert.Contains(t, reply.Content, "irrigation facilities")
		assert.Contains(t, reply.Content, "consistent moisture")

		reply = RespondTo("how much water?", &farm, now)
		assert.Contains(t, reply.Content, "mulching")
	})
}

func TestRespondTo_WithoutProfile(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	t.Run("matched topics still answer", func(t *testing.T) {
		reply := RespondTo("pest problem", nil, now)
		assert.Equal(t, TopicPest, reply.Topic)
		assert.NotEmpty(t, reply.Content)
	})

	t.Run("generic fallback", func(t *testing.T) {
		reply := RespondTo("asdfgh", nil, now)
		assert.Equal(t, TopicUnknown, reply.Topic)
		assert.Contains(t, reply.Content, "farming questions")
	})
}

func TestRespondTo_FallbackInputs(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	farm := testFarm(models.CropPaddy, models.SoilAlluvial)

	for _, message := range []string{"", "   ", "\t\n", "xyzzy"} {
		reply := RespondTo(message, &farm, now)
		assert.Equal(t, TopicUnknown, reply.Topic, "message=%q", message)
		assert.Contains(t, reply.Content, "paddy", "fallback should still use the profile")
	}
}

func TestRespondTo_Deterministic(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	farm := testFarm(models.CropCoconut, models.SoilCoastal)

	first := RespondTo("market price today", &farm, now)
	for i := 0; i < 10; i++ {
		again := RespondTo("market price today", &farm, now)
		assert.Equal(t, first, again)
	}
	assert.True(t, strings.Contains(first.Content, "coconut"))
}
