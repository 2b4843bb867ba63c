// internal/models/farm.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Crop là các loại cây trồng được hỗ trợ. Unknown values are rejected at the API boundary.
type Crop string

const (
	CropPaddy    Crop = "paddy"
	CropCoconut  Crop = "coconut"
	CropRubber   Crop = "rubber"
	CropBanana   Crop = "banana"
	CropBrinjal  Crop = "brinjal"
	CropPepper   Crop = "pepper"
	CropCardamom Crop = "cardamom"
	CropGinger   Crop = "ginger"
	CropTurmeric Crop = "turmeric"
)

func (c Crop) IsValid() bool {
	switch c {
	case CropPaddy, CropCoconut, CropRubber, CropBanana, CropBrinjal,
		CropPepper, CropCardamom, CropGinger, CropTurmeric:
		return true
	}
	return false
}

type SoilType string

const (
	SoilLaterite SoilType = "laterite"
	SoilAlluvial SoilType = "alluvial"
	SoilCoastal  SoilType = "coastal"
	SoilForest   SoilType = "forest"
)

func (s SoilType) IsValid() bool {
	switch s {
	case SoilLaterite, SoilAlluvial, SoilCoastal, SoilForest:
		return true
	}
	return false
}

type LandUnit string

const (
	LandUnitCents    LandUnit = "cents"
	LandUnitHectares LandUnit = "hectares"
)

func (u LandUnit) IsValid() bool {
	return u == LandUnitCents || u == LandUnitHectares
}

// Coordinates là vị trí GPS của trang trại (tùy chọn).
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Farm là hồ sơ trang trại của một người dùng. At most one active farm per user;
// resubmission updates the document in place.
type Farm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	LandSize    float64            `bson:"landSize" json:"landSize"`
	LandUnit    LandUnit           `bson:"landUnit" json:"landUnit"`
	CurrentCrop Crop               `bson:"currentCrop" json:"currentCrop"`
	SoilType    SoilType           `bson:"soilType" json:"soilType"`
	Irrigation  bool               `bson:"irrigation" json:"irrigation"`
	Coordinates *Coordinates       `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
