// Package depreciation - Calibration tables
// One canonical calibration set, versioned and swappable. Engines never
// re-derive these constants inline.
package depreciation

import "vehicle-cost/core/types"

// Calibration is a complete, swappable set of depreciation constants.
type Calibration struct {
	// Version identifies the calibration set
	Version string

	// SegmentCurves map ownership year 1..15 to the cumulative
	// fraction of value lost, per segment. Monotonically increasing.
	SegmentCurves map[types.Segment][15]float64

	// StandardCurve is used for unclassified segments
	StandardCurve [15]float64

	// SegmentCaps bound the adjusted cumulative rate per segment
	SegmentCaps map[types.Segment]float64

	// DefaultCap applies when a segment has no cap entry
	DefaultCap float64

	// ExtrapolationPerYear is added per year beyond year 15
	ExtrapolationPerYear float64

	// ExtrapolationCeiling bounds extrapolated cumulative rates
	ExtrapolationCeiling float64

	// BrandMultipliers scale depreciation relative to average (1.0)
	BrandMultipliers map[string]float64

	// HighRetentionModels multiply the brand factor by
	// HighRetentionFactor (better retention). Substring match.
	HighRetentionModels map[string][]string

	// PoorRetentionModels multiply the brand factor by
	// PoorRetentionFactor (worse retention). Substring match.
	PoorRetentionModels map[string][]string

	HighRetentionFactor float64
	PoorRetentionFactor float64

	// UsedRateLadders are annual decay rates for used vehicles,
	// bucketed by vehicle age at purchase. Index by min(year-1, 4).
	UsedRatesRecent [5]float64 // 1-3 years old at purchase
	UsedRatesMidAge [5]float64 // 4-7 years old
	UsedRatesOlder  [5]float64 // 8+ years old

	// UsedBrandFactors is the reduced brand table for the used model
	UsedBrandFactors map[string]float64

	// UsedResidualFloor is the minimum value as a fraction of the
	// purchase price
	UsedResidualFloor float64
}

// DefaultCalibration returns the canonical calibration set.
func DefaultCalibration() *Calibration {
	return &Calibration{
		Version: "2024.1",

		SegmentCurves: map[types.Segment][15]float64{
			// Luxury vehicles depreciate faster early, then plateau
			types.SegmentLuxury: {
				0.25, 0.42, 0.55, 0.65, 0.72,
				0.77, 0.81, 0.84, 0.86, 0.88,
				0.89, 0.90, 0.91, 0.92, 0.93,
			},
			// Electric vehicles lose value quickly as the technology ages
			types.SegmentElectric: {
				0.30, 0.50, 0.65, 0.75, 0.82,
				0.86, 0.89, 0.91, 0.92, 0.93,
				0.94, 0.95, 0.95, 0.95, 0.95,
			},
			// Trucks hold value well
			types.SegmentTruck: {
				0.15, 0.28, 0.38, 0.46, 0.53,
				0.59, 0.64, 0.68, 0.71, 0.74,
				0.76, 0.78, 0.80, 0.82, 0.84,
			},
			types.SegmentSports: {
				0.22, 0.38, 0.50, 0.60, 0.68,
				0.74, 0.78, 0.81, 0.83, 0.85,
				0.86, 0.87, 0.88, 0.89, 0.90,
			},
			types.SegmentSUV: {
				0.18, 0.32, 0.43, 0.52, 0.60,
				0.66, 0.71, 0.75, 0.78, 0.80,
				0.82, 0.83, 0.84, 0.85, 0.86,
			},
			types.SegmentCompact: {
				0.20, 0.35, 0.47, 0.56, 0.64,
				0.70, 0.75, 0.79, 0.82, 0.84,
				0.86, 0.87, 0.88, 0.89, 0.90,
			},
			types.SegmentSedan: {
				0.21, 0.36, 0.48, 0.58, 0.66,
				0.72, 0.77, 0.81, 0.84, 0.86,
				0.88, 0.89, 0.90, 0.91, 0.92,
			},
			types.SegmentEconomy: {
				0.24, 0.40, 0.52, 0.62, 0.70,
				0.76, 0.81, 0.84, 0.87, 0.89,
				0.90, 0.91, 0.92, 0.93, 0.94,
			},
		},

		StandardCurve: [15]float64{
			0.20, 0.34, 0.45, 0.54, 0.62,
			0.68, 0.73, 0.77, 0.80, 0.82,
			0.84, 0.85, 0.86, 0.87, 0.88,
		},

		SegmentCaps: map[types.Segment]float64{
			types.SegmentLuxury:   0.95,
			types.SegmentElectric: 0.96,
			types.SegmentTruck:    0.85,
			types.SegmentSUV:      0.88,
			types.SegmentSports:   0.90,
			types.SegmentCompact:  0.91,
			types.SegmentSedan:    0.92,
			types.SegmentEconomy:  0.94,
		},
		DefaultCap: 0.92,

		ExtrapolationPerYear: 0.005,
		ExtrapolationCeiling: 0.96,

		BrandMultipliers: map[string]float64{
			// Premium value retention
			"Toyota":  0.78,
			"Honda":   0.80,
			"Lexus":   0.75,
			"Porsche": 0.82,

			// Good retention
			"Subaru":  0.88,
			"Mazda":   0.90,
			"Hyundai": 0.92,
			"Kia":     0.94,
			"Acura":   0.85,

			// Average retention
			"Ford":      1.00,
			"Chevrolet": 1.02,
			"GMC":       1.00,
			"Buick":     0.98,
			"Nissan":    1.03,
			"Infiniti":  1.08,
			"Volvo":     1.05,

			// Below average
			"Volkswagen": 1.12,
			"Mini":       1.15,
			"Jaguar":     1.18,
			"Land Rover": 1.20,

			// Heavy depreciation, mostly luxury
			"BMW":           1.22,
			"Mercedes-Benz": 1.25,
			"Audi":          1.18,
			"Cadillac":      1.20,
			"Lincoln":       1.25,
			"Genesis":       1.15,

			"Chrysler":   1.30,
			"Dodge":      1.28,
			"Jeep":       1.10,
			"Ram":        1.05,
			"Fiat":       1.35,
			"Alfa Romeo": 1.32,

			// EV brands carry tech-obsolescence risk
			"Tesla":  1.15,
			"Rivian": 1.25,
			"Lucid":  1.30,
		},

		HighRetentionModels: map[string][]string{
			"Toyota":    {"Prius", "Camry", "Corolla", "RAV4", "Highlander", "Sienna", "Tundra", "Tacoma"},
			"Honda":     {"Civic", "Accord", "CR-V", "Pilot", "Odyssey", "Ridgeline"},
			"Subaru":    {"Outback", "Forester", "Impreza", "WRX", "Crosstrek"},
			"Lexus":     {"RX", "ES", "GX", "LX", "NX"},
			"Jeep":      {"Wrangler"},
			"Ford":      {"F-150", "Bronco"},
			"Chevrolet": {"Corvette", "Silverado", "Tahoe"},
			"Porsche":   {"911", "Macan", "Cayenne"},
			"Tesla":     {"Model S", "Model 3"},
		},

		PoorRetentionModels: map[string][]string{
			"BMW":           {"X6", "7 Series", "i3", "i8"},
			"Mercedes-Benz": {"S-Class", "SL-Class", "G-Class"},
			"Audi":          {"A8", "R8", "Q7"},
			"Cadillac":      {"Escalade", "CT6"},
			"Lincoln":       {"Navigator", "Continental"},
			"Chrysler":      {"300", "Pacifica"},
			"Fiat":          {"500", "500X"},
			"Jaguar":        {"XJ", "F-Type"},
			"Land Rover":    {"Range Rover", "Discovery"},
		},

		HighRetentionFactor: 0.85,
		PoorRetentionFactor: 1.15,

		UsedRatesRecent: [5]float64{0.08, 0.07, 0.06, 0.05, 0.04},
		UsedRatesMidAge: [5]float64{0.05, 0.04, 0.04, 0.03, 0.03},
		UsedRatesOlder:  [5]float64{0.03, 0.02, 0.02, 0.02, 0.02},

		UsedBrandFactors: map[string]float64{
			"Toyota":        0.8,
			"Honda":         0.8,
			"Lexus":         0.7,
			"BMW":           1.2,
			"Mercedes-Benz": 1.2,
			"Audi":          1.1,
			"Chevrolet":     1.0,
			"Ford":          1.0,
			"Hyundai":       0.9,
		},

		UsedResidualFloor: 0.15,
	}
}

// Curve returns the cumulative curve for a segment, falling back to
// the standard curve.
func (c *Calibration) Curve(seg types.Segment) [15]float64 {
	if curve, ok := c.SegmentCurves[seg]; ok {
		return curve
	}
	return c.StandardCurve
}

// Cap returns the cumulative-rate cap for a segment.
func (c *Calibration) Cap(seg types.Segment) float64 {
	if cap, ok := c.SegmentCaps[seg]; ok {
		return cap
	}
	return c.DefaultCap
}

// BrandMultiplier returns the brand factor, 1.0 for unknown makes.
func (c *Calibration) BrandMultiplier(vehicleMake string) float64 {
	if m, ok := c.BrandMultipliers[vehicleMake]; ok {
		return m
	}
	return 1.0
}

// UsedBrandFactor returns the reduced used-model brand factor.
func (c *Calibration) UsedBrandFactor(vehicleMake string) float64 {
	if m, ok := c.UsedBrandFactors[vehicleMake]; ok {
		return m
	}
	return 1.0
}
