// internal/models/scheme.go
package models

// EligibilityTag là một tiêu chí hưởng lợi của chương trình hỗ trợ.
type EligibilityTag string

const (
	TagLandowner      EligibilityTag = "landowner"
	TagSmallFarmer    EligibilityTag = "small_farmer"
	TagKeralaResident EligibilityTag = "kerala_resident"
	TagActiveFarmer   EligibilityTag = "active_farmer"
	TagAllFarmers     EligibilityTag = "all_farmers"
	TagOrganicFarmer  EligibilityTag = "organic_farmer"
	TagCertifiedLand  EligibilityTag = "certified_land"
)

// Scheme mô tả một chương trình hỗ trợ của chính phủ. Read-only reference
// data, loaded once at startup, never persisted per user.
type Scheme struct {
	ID            string           `json:"id"`
	NameEN        string           `json:"name_en"`
	NameML        string           `json:"name_ml"`
	DescriptionEN string           `json:"description_en"`
	DescriptionML string           `json:"description_ml"`
	Amount        int              `json:"amount"`
	Eligibility   []EligibilityTag `json:"eligibility"`
	Documents     []string         `json:"documents"`
	Deadline      string           `json:"application_deadline"`
	Status        string           `json:"status"`
}
