package models

import "time"

// SignatureFile references an uploaded signature image.
type SignatureFile struct {
	FileName  string `json:"fileName,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// EBAForm is the Existing Building Assessment questionnaire. The remote API
// models this loosely; here every question is an explicit field so a page
// can enumerate them and a save never silently drops an answer. Yes/no and
// enum answers are plain strings as the API returns them; multi-select
// answers are pipe-joined ("A | B") per the original form encoding.
type EBAForm struct {
	Complete       bool           `json:"complete,omitempty"`
	ClientApproved bool           `json:"clientApproved,omitempty"`
	AssessorName   string         `json:"assessorName,omitempty"`
	Date           *time.Time     `json:"date,omitempty"`
	Signature      *SignatureFile `json:"signature_assessor,omitempty"`

	NameOfOwners                  string `json:"nameOfOwners,omitempty"`
	ProofOfOwnership              string `json:"proofOfOwnership,omitempty"`
	BCAOrTA                       string `json:"bcaOrTa,omitempty"`
	LotOrDPNumber                 string `json:"lotOrDPNumber,omitempty"`
	ApproximateYearOfConstruction string `json:"approximateYearOfConstruction,omitempty"`
	NumberOfStories               string `json:"numberOfStories,omitempty"`
	PropertySiteSection           string `json:"propertySiteSection,omitempty"`
	PropertySiteExposure          string `json:"propertySiteExposure,omitempty"`
	PropertySiteArea              string `json:"propertySiteArea,omitempty"`

	RoofAndEavesCol1 string `json:"roofAndEavesCol1,omitempty"`
	RoofAndEavesCol2 string `json:"roofAndEavesCol2,omitempty"`
	RoofAndEavesCol3 string `json:"roofAndEavesCol3,omitempty"`

	FoundationAndFloor       string `json:"foundationAndFloor,omitempty"`
	Framing                  string `json:"framing,omitempty"`
	Joinery                  string `json:"joinery,omitempty"`
	Lining                   string `json:"lining,omitempty"`
	BuildingPaper            string `json:"buildingPaper,omitempty"`
	ExteriorCladding         string `json:"exteriorCladding,omitempty"`
	CladdingType             string `json:"claddingType,omitempty"`
	CladdingTypeInstalledVia string `json:"claddingTypeInstalledVia,omitempty"`
	FinishOfCladding         string `json:"finishOfCladding,omitempty"`

	B131Structure                       string `json:"b131_structure,omitempty"`
	B131StructurePriorToInstallation    string `json:"b131_structure_priorToInstallationWorkRequired,omitempty"`
	B131StructurePriorToCertification   string `json:"b131_structure_priorToCertificationWorkRequired,omitempty"`
	C22FirePrevention                   string `json:"c22_preventionOfFireOccuring,omitempty"`
	C22FirePreventionPriorToInstall     string `json:"c22_preventionOfFireOccuring_priorToInstallationWorkRequired,omitempty"`
	C22FirePreventionPriorToCertify     string `json:"c22_preventionOfFireOccuring_priorToCertificationWorkRequired,omitempty"`
	G931Electricity                     string `json:"g931_electricity,omitempty"`
	G931ElectricityPriorToInstall       string `json:"g931_electricity_priorToInstallationWorkRequired,omitempty"`
	G931ElectricityPriorToCertify       string `json:"g931_electricity_priorToCertificationWorkRequired,omitempty"`
	H131EnergyEfficiency                string `json:"h131_energyEfficiency,omitempty"`
	MoisturePaintFinishWellMaintained   string `json:"c22_externalMoisture_paintFinishOfExteriorCladdingAppearsToBeInAnWellMaintainedCondition,omitempty"`
	MoistureCladdingDeterioration       string `json:"c22_externalMoisture_exteriorCladdingAppearsToHaveDeteriorationToALevelThatMayAllowWaterIngress,omitempty"`
	MoistureJoineryGoodCondition        string `json:"c22_externalMoisture_joineryAppearsToBeInGoodConditionAndNotAllowingWaterIngress,omitempty"`
	MoistureFlashingsCorrect            string `json:"c22_externalMoisture_flashingsArePresentAndAppearToBeInstalledCorrectly,omitempty"`
	MoisturePenetrationsSealed          string `json:"c22_externalMoisture_allExistingPenetrationsAreSealed,omitempty"`
	MoistureCladdingJoinsSealed         string `json:"c22_externalMoisture_joinBetweenDifferentCladdingTypesSealed,omitempty"`
	MoistureGuttersFunctioning          string `json:"c22_externalMoisture_guttersAndDownPipesArePresentAndAppearToBeFunctioningCorrectly,omitempty"`
	MoistureWaterPoolsAgainstWall       string `json:"c22_externalMoisture_isWaterAbleToPoolAgainstExteriorWall,omitempty"`
	MoistureWallsFreeToAir              string `json:"c22_externalMoisture_wallsAreFreeToAir,omitempty"`
	MoisturePriorToInstallation         string `json:"c22_externalMoisture_priorToInstallationWorkRequired,omitempty"`
	MoisturePriorToCertification        string `json:"c22_externalMoisture_priorToCertificationWorkRequired,omitempty"`
	MasonryUnderfloorVentsClear         string `json:"masonryCladding_masonryCladUnderfloorVentsArePresentAndClear,omitempty"`
	MasonryVerticalJointsSealed         string `json:"masonryCladding_windowOrMasonryVerticalJointsAreSealed,omitempty"`
	MasonrySoffitsSound                 string `json:"masonryCladding_soffitsAppearToBeSoundWithNoWaterStainingOrBubblingPaintWhichMayIndicateGuttersOrRoofLeakingIntoSurfeitsAndPossiblyWalls,omitempty"`
	MasonryLiningsDampOrRotten          string `json:"masonryCladding_areasOfLiningOrCladdingAppearToBeDampOrSoftOrDiscolouredOrMouldyOrRottenSuggestingTheAccumulationOfWater,omitempty"`
	MasonryUnderfloorExcessivelyDamp    string `json:"masonryCladding_underfloorSpaceExcessivelyDamp,omitempty"`
}

// EBAPhotoSections are the photo groups captured during an assessment.
var EBAPhotoSections = []string{"north", "east", "south", "west", "roof", "underfloor", "general"}
