// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// constructor-time validation.
package types

// Segment represents a vehicle market category
type Segment string

const (
	SegmentLuxury   Segment = "luxury"
	SegmentElectric Segment = "electric"
	SegmentTruck    Segment = "truck"
	SegmentSUV      Segment = "suv"
	SegmentSports   Segment = "sports"
	SegmentCompact  Segment = "compact"
	SegmentSedan    Segment = "sedan"
	SegmentEconomy  Segment = "economy"
)

// String returns the string representation
func (s Segment) String() string {
	return string(s)
}

// TransactionType distinguishes a purchase from a lease
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionLease    TransactionType = "lease"
)

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	return t == TransactionPurchase || t == TransactionLease
}

// DrivingStyle affects fuel consumption and wear
type DrivingStyle string

const (
	DrivingGentle     DrivingStyle = "gentle"
	DrivingNormal     DrivingStyle = "normal"
	DrivingAggressive DrivingStyle = "aggressive"
)

// Terrain affects fuel consumption
type Terrain string

const (
	TerrainFlat  Terrain = "flat"
	TerrainHilly Terrain = "hilly"
)

// GeographyType classifies a location's density
type GeographyType string

const (
	GeographyUrban    GeographyType = "urban"
	GeographySuburban GeographyType = "suburban"
	GeographyRural    GeographyType = "rural"
)

// CoverageType is the insurance coverage level
type CoverageType string

const (
	CoverageLiability     CoverageType = "liability"
	CoverageStandard      CoverageType = "standard"
	CoverageComprehensive CoverageType = "comprehensive"
)

// ShopType is where maintenance is performed
type ShopType string

const (
	ShopIndependent ShopType = "independent"
	ShopChain       ShopType = "chain"
	ShopSpecialty   ShopType = "specialty"
	ShopDealership  ShopType = "dealership"
	ShopDIY         ShopType = "diy"
)

// ChargingPreference is the home/public charging mix for EVs
type ChargingPreference string

const (
	ChargingHome   ChargingPreference = "home"
	ChargingMixed  ChargingPreference = "mixed"
	ChargingPublic ChargingPreference = "public"
)

// VehicleIdentity identifies a vehicle. Segment is derived by
// classification, never stored here.
type VehicleIdentity struct {
	// Make is the manufacturer name (e.g., "Toyota")
	Make string `json:"make"`

	// Model is the nameplate (e.g., "Camry")
	Model string `json:"model"`

	// ModelYear is the model year
	ModelYear int `json:"model_year"`

	// Trim is the trim level, used for MSRP lookup
	Trim string `json:"trim,omitempty"`
}

// VehicleCharacteristics is the reference data for one vehicle,
// resolved by a vehicle source collaborator.
type VehicleCharacteristics struct {
	// MPG is combined fuel economy for combustion vehicles
	MPG float64 `json:"mpg,omitempty"`

	// MPGe is combined efficiency for electric vehicles
	MPGe float64 `json:"mpge,omitempty"`

	// IsElectric is true for battery-electric vehicles
	IsElectric bool `json:"is_electric"`

	// ReliabilityScore is a 1-5 reliability rating
	ReliabilityScore float64 `json:"reliability_score"`

	// MarketSegment is the data-sourced segment, empty when the
	// keyword classifier should decide
	MarketSegment Segment `json:"market_segment,omitempty"`
}

// CostCategory labels a cost bucket in category totals
type CostCategory string

const (
	CategoryDepreciation  CostCategory = "depreciation"
	CategoryMaintenance   CostCategory = "maintenance"
	CategoryInsurance     CostCategory = "insurance"
	CategoryFuelEnergy    CostCategory = "fuel_energy"
	CategoryFinancing     CostCategory = "financing"
	CategoryLeasePayments CostCategory = "lease_payments"
	CategoryFeesPenalties CostCategory = "fees_penalties"
)
