// internal/advisory/schemes.go
package advisory

import "krishi-sakhi-api-server/internal/models"

// SchemeConfig chứa ngưỡng của các tiêu chí hưởng lợi.
// SmallFarmerLandLimit is compared against the raw landSize with NO unit
// normalization, exactly as the business rule is written today: 2 cents and
// 2 hectares both pass. The owner of the rule has to decide which unit the
// limit is meant in before this can be tightened.
type SchemeConfig struct {
	SmallFarmerLandLimit float64
}

func DefaultSchemeConfig() SchemeConfig {
	return SchemeConfig{SmallFarmerLandLimit: 2}
}

// governmentSchemes là bảng tham chiếu tĩnh, nạp một lần, không bao giờ thay đổi.
var governmentSchemes = []models.Scheme{
	{
		ID:            "pm-kisan",
		NameEN:        "PM-KISAN",
		NameML:        "പിഎം-കിസാൻ",
		DescriptionEN: "Direct income support to farmers",
		DescriptionML: "കർഷകർക്ക് നേരിട്ടുള്ള വരുമാന പിന്തുണ",
		Amount:        6000,
		Eligibility:   []models.EligibilityTag{models.TagLandowner, models.TagSmallFarmer},
		Documents:     []string{"land_records", "bank_account", "aadhaar"},
		Deadline:      "2024-12-31",
		Status:        "active",
	},
	{
		ID:            "kerala-farmer-assistance",
		NameEN:        "Kerala Farmer Assistance Scheme",
		NameML:        "കേരള കർഷക സഹായ പദ്ധതി",
		DescriptionEN: "State government support for farmers",
		DescriptionML: "കർഷകർക്കുള്ള സംസ്ഥാന സർക്കാർ പിന്തുണ",
		Amount:        10000,
		Eligibility:   []models.EligibilityTag{models.TagKeralaResident, models.TagActiveFarmer},
		Documents:     []string{"residence_proof", "farming_certificate"},
		Deadline:      "2024-11-30",
		Status:        "active",
	},
	{
		ID:            "crop-insurance",
		NameEN:        "Pradhan Mantri Fasal Bima Yojana",
		NameML:        "പ്രധാനമന്ത്രി ഫസൽ ബീമ യോജന",
		DescriptionEN: "Crop insurance scheme for risk mitigation",
		DescriptionML: "അപകടസാധ്യത കുറയ്ക്കുന്നതിനുള്ള വിള ഇൻഷുറൻസ് പദ്ധതി",
		Amount:        0, // Premium based
		Eligibility:   []models.EligibilityTag{models.TagAllFarmers},
		Documents:     []string{"land_records", "sowing_certificate"},
		Deadline:      "2024-10-15",
		Status:        "active",
	},
	{
		ID:            "organic-farming-support",
		NameEN:        "Organic Farming Support Scheme",
		NameML:        "ജൈവകൃഷി പിന്തുണ പദ്ധതി",
		DescriptionEN: "Support for organic farming practices",
		DescriptionML: "ജൈവകൃഷി രീതികൾക്കുള്ള പിന്തുണ",
		Amount:        15000,
		Eligibility:   []models.EligibilityTag{models.TagOrganicFarmer, models.TagCertifiedLand},
		Documents:     []string{"organic_certificate", "land_records"},
		Deadline:      "2024-09-30",
		Status:        "active",
	},
}

// AllSchemes trả về toàn bộ bảng chương trình hỗ trợ.
func AllSchemes() []models.Scheme {
	out := make([]models.Scheme, len(governmentSchemes))
	copy(out, governmentSchemes)
	return out
}

// SchemeByID tìm một chương trình theo id.
func SchemeByID(id string) (models.Scheme, bool) {
	for _, s := range governmentSchemes {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scheme{}, false
}

// tagSatisfied đánh giá một tiêu chí trên hồ sơ trang trại và số hoạt động.
func tagSatisfied(tag models.EligibilityTag, farm models.Farm, activityCount int64, cfg SchemeConfig) bool {
	switch tag {
	case models.TagLandowner:
		return farm.LandSize > 0
	case models.TagSmallFarmer:
		return farm.LandSize <= cfg.SmallFarmerLandLimit
	case models.TagKeralaResident:
		// Closed world: every user of this system is a Kerala resident.
		return true
	case models.TagActiveFarmer:
		return activityCount > 0
	case models.TagAllFarmers:
		return true
	default:
		// organic_farmer and certified_land have no witnessing data yet, so
		// they can never be satisfied.
		return false
	}
}

// EligibleSchemes lọc bảng chương trình: một chương trình được chọn khi ÍT
// NHẤT MỘT tiêu chí của nó thỏa mãn (OR semantics). Recomputed eagerly on
// every call; there is no cached eligibility state.
func EligibleSchemes(farm models.Farm, activityCount int64, cfg SchemeConfig) []models.Scheme {
	eligible := []models.Scheme{}
	for _, scheme := range governmentSchemes {
		for _, tag := range scheme.Eligibility {
			if tagSatisfied(tag, farm, activityCount, cfg) {
				eligible = append(eligible, scheme)
				break
			}
		}
	}
	return eligible
}
