// Package maintenance - Service and multiplier tables
package maintenance

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// ScheduledService is one mileage-interval service definition
type ScheduledService struct {
	// Name is the display name
	Name string

	// IntervalMiles is the service interval
	IntervalMiles int

	// BaseCost is the unadjusted cost per occurrence
	BaseCost decimal.Decimal
}

// Tables is a complete, swappable set of maintenance constants.
type Tables struct {
	// Version identifies the table set
	Version string

	// Services lists the scheduled interval services in a stable
	// order. The schedule builder iterates this slice, so no year can
	// contain two entries with the same name by construction.
	Services []ScheduledService

	// BrandMultipliers scale costs by brand reliability
	BrandMultipliers map[string]float64

	// ShopMultipliers scale costs by shop type
	ShopMultipliers map[types.ShopType]float64

	// WearBaseCosts map vehicle age (years 4..10) to the base
	// age-driven wear/repair cost. Ages past the table use the last
	// entry.
	WearBaseCosts map[int]float64

	// WearMaxAge is the last bracketed age in WearBaseCosts
	WearMaxAge int

	// WearMaterialityThreshold drops wear items below this amount
	WearMaterialityThreshold decimal.Decimal

	// LeaseWearBase is the reduced wear base for leased vehicles
	LeaseWearBase float64

	// LeaseMinimumItemCost drops lease line items below this amount
	LeaseMinimumItemCost decimal.Decimal

	// RegionalFloor and RegionalCeiling clamp the regional multiplier
	RegionalFloor   float64
	RegionalCeiling float64
}

func dollars(d int) decimal.Decimal {
	return decimal.NewFromInt(int64(d))
}

// DefaultTables returns the canonical maintenance tables.
func DefaultTables() *Tables {
	return &Tables{
		Version: "2024.1",

		Services: []ScheduledService{
			{Name: "Oil Change", IntervalMiles: 7500, BaseCost: dollars(65)},
			{Name: "Tire Rotation", IntervalMiles: 7500, BaseCost: dollars(25)},
			{Name: "Air Filter", IntervalMiles: 15000, BaseCost: dollars(35)},
			{Name: "Cabin Filter", IntervalMiles: 15000, BaseCost: dollars(45)},
			{Name: "Brake Inspection", IntervalMiles: 15000, BaseCost: dollars(50)},
			{Name: "Major Service", IntervalMiles: 30000, BaseCost: dollars(400)},
			{Name: "Fuel Filter", IntervalMiles: 30000, BaseCost: dollars(85)},
			{Name: "Spark Plugs", IntervalMiles: 45000, BaseCost: dollars(180)},
			{Name: "Differential Service", IntervalMiles: 45000, BaseCost: dollars(120)},
			{Name: "Transmission Service", IntervalMiles: 60000, BaseCost: dollars(200)},
			{Name: "Coolant Flush", IntervalMiles: 60000, BaseCost: dollars(150)},
		},

		BrandMultipliers: map[string]float64{
			"Toyota":        0.85,
			"Honda":         0.87,
			"Mazda":         0.90,
			"Hyundai":       0.92,
			"Kia":           0.92,
			"Nissan":        0.95,
			"Subaru":        0.98,
			"Chevrolet":     1.05,
			"Ford":          1.08,
			"Ram":           1.12,
			"Volkswagen":    1.15,
			"Volvo":         1.25,
			"Audi":          1.32,
			"BMW":           1.35,
			"Mercedes-Benz": 1.40,
		},

		ShopMultipliers: map[types.ShopType]float64{
			types.ShopIndependent: 1.00,
			types.ShopChain:       1.05,
			types.ShopSpecialty:   1.10,
			types.ShopDealership:  1.15,
			types.ShopDIY:         0.50, // parts only
		},

		WearBaseCosts: map[int]float64{
			4:  100,
			5:  150,
			6:  200,
			7:  300,
			8:  400,
			9:  500,
			10: 600,
		},
		WearMaxAge:               10,
		WearMaterialityThreshold: dollars(100),

		LeaseWearBase:        100,
		LeaseMinimumItemCost: dollars(5),

		RegionalFloor:   0.8,
		RegionalCeiling: 1.3,
	}
}

// BrandMultiplier returns the reliability factor, 1.0 for unknown makes.
func (t *Tables) BrandMultiplier(vehicleMake string) float64 {
	if m, ok := t.BrandMultipliers[vehicleMake]; ok {
		return m
	}
	return 1.0
}

// ShopMultiplier returns the shop factor, 1.0 for unknown shop types.
func (t *Tables) ShopMultiplier(shop types.ShopType) float64 {
	if m, ok := t.ShopMultipliers[shop]; ok {
		return m
	}
	return 1.0
}

// ClampRegional bounds a regional multiplier to the allowed band.
func (t *Tables) ClampRegional(m float64) float64 {
	if m < t.RegionalFloor {
		return t.RegionalFloor
	}
	if m > t.RegionalCeiling {
		return t.RegionalCeiling
	}
	return m
}

// WearBase returns the age-driven wear base cost for a vehicle age.
// Zero for ages 3 and under.
func (t *Tables) WearBase(age int) float64 {
	if age <= 3 {
		return 0
	}
	if age > t.WearMaxAge {
		age = t.WearMaxAge
	}
	return t.WearBaseCosts[age]
}
