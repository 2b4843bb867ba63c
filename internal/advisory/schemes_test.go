package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-sakhi-api-server/internal/models"
)

func schemeIDs(schemes []models.Scheme) []string {
	ids := make([]string, 0, len(schemes))
	for _, s := range schemes {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestAllSchemes(t *testing.T) {
	schemes := AllSchemes()
	require.Len(t, schemes, 4)
	assert.Equal(t, []string{"pm-kisan", "kerala-farmer-assistance", "crop-insurance", "organic-farming-support"}, schemeIDs(schemes))

	// Bảng gốc không được thay đổi qua slice trả về.
	schemes[0].ID = "mutated"
	assert.Equal(t, "pm-kisan", AllSchemes()[0].ID)
}

func TestSchemeByID(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		s, ok := SchemeByID("crop-insurance")
		require.True(t, ok)
		assert.Equal(t, "Pradhan Mantri Fasal Bima Yojana", s.NameEN)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := SchemeByID("no-such-scheme")
		assert.False(t, ok)
	})
}

func TestEligibleSchemes_SmallLandholdingNoActivities(t *testing.T) {
	farm := testFarm(models.CropPaddy, models.SoilAlluvial)
	farm.LandSize = 1.5

	eligible := EligibleSchemes(farm, 0, DefaultSchemeConfig())

	assert.ElementsMatch(t,
		[]string{"pm-kisan", "kerala-farmer-assistance", "crop-insurance"},
		schemeIDs(eligible))
}

func TestEligibleSchemes_OrganicNeverMatches(t *testing.T) {
	// organic_farmer và certified_land chưa có dữ liệu chứng thực nên không
	// bao giờ thỏa mãn.
	farm := testFarm(models.CropPaddy, models.SoilAlluvial)
	farm.LandSize = 1.0

	eligible := EligibleSchemes(farm, 100, DefaultSchemeConfig())
	assert.NotContains(t, schemeIDs(eligible), "organic-farming-support")
}

func TestEligibleSchemes_OrSemantics(t *testing.T) {
	t.Run("large landholding still matches pm-kisan via landowner", func(t *testing.T) {
		farm := testFarm(models.CropRubber, models.SoilLaterite)
		farm.LandSize = 10

		eligible := EligibleSchemes(farm, 0, DefaultSchemeConfig())
		assert.Contains(t, schemeIDs(eligible), "pm-kisan")
	})

	t.Run("zero landholding still matches pm-kisan via small_farmer", func(t *testing.T) {
		farm := testFarm(models.CropRubber, models.SoilLaterite)
		farm.LandSize = 0

		eligible := EligibleSchemes(farm, 0, DefaultSchemeConfig())
		assert.Contains(t, schemeIDs(eligible), "pm-kisan")
	})
}

func TestEligibleSchemes_ActivityCountIsIrrelevantToKeralaSchemes(t *testing.T) {
	// kerala_resident luôn đúng, nên chương trình của bang không phụ thuộc
	// vào số hoạt động.
	farm := testFarm(models.CropBanana, models.SoilAlluvial)

	for _, count := range []int64{0, 1, 50} {
		eligible := EligibleSchemes(farm, count, DefaultSchemeConfig())
		assert.Contains(t, schemeIDs(eligible), "kerala-farmer-assistance", "activityCount=%d", count)
	}
}

func TestEligibleSchemes_ConfigurableLandLimit(t *testing.T) {
	farm := testFarm(models.CropGinger, models.SoilForest)
	farm.LandSize = 3

	t.Run("above the default limit", func(t *testing.T) {
		eligible := EligibleSchemes(farm, 0, DefaultSchemeConfig())
		// landowner vẫn đúng nên pm-kisan vẫn được chọn.
		assert.Contains(t, schemeIDs(eligible), "pm-kisan")
	})

	t.Run("limit boundary is inclusive", func(t *testing.T) {
		cfg := SchemeConfig{SmallFarmerLandLimit: 3}
		onLimit := farm
		onLimit.LandSize = 3
		eligible := EligibleSchemes(onLimit, 0, cfg)
		assert.Contains(t, schemeIDs(eligible), "pm-kisan")
	})
}
