// Package refdata provides the reference-data collaborators consumed
// by the calculation engine: vehicle characteristics, trim pricing and
// regional cost lookups. Two vehicle sources share one interface: a
// built-in static catalog and an optional SQLite-backed store.
package refdata

import (
	"strings"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// vehicleRecord is one catalog entry. Trim MSRPs are keyed by trim
// name; the empty key is the base trim.
type vehicleRecord struct {
	mpg         float64
	mpge        float64
	electric    bool
	reliability float64
	segment     types.Segment
	trims       map[string]float64
}

// vehicleCatalog is the built-in reference table, make → model.
// Lookups are case-insensitive.
var vehicleCatalog = map[string]map[string]vehicleRecord{
	"toyota": {
		"camry": {
			mpg: 32, reliability: 4.5, segment: types.SegmentSedan,
			trims: map[string]float64{"": 26420, "LE": 26420, "SE": 28400, "XLE": 31170, "XSE": 32265},
		},
		"corolla": {
			mpg: 35, reliability: 4.5, segment: types.SegmentCompact,
			trims: map[string]float64{"": 22050, "LE": 22050, "SE": 24265, "XSE": 27330},
		},
		"rav4": {
			mpg: 30, reliability: 4.3, segment: types.SegmentSUV,
			trims: map[string]float64{"": 28475, "LE": 28475, "XLE": 29975, "Limited": 36030},
		},
		"highlander": {
			mpg: 24, reliability: 4.2, segment: types.SegmentSUV,
			trims: map[string]float64{"": 39120, "L": 39120, "XLE": 44370, "Platinum": 52225},
		},
		"tacoma": {
			mpg: 21, reliability: 4.1, segment: types.SegmentTruck,
			trims: map[string]float64{"": 31500, "SR": 31500, "TRD Sport": 38395, "TRD Pro": 52225},
		},
	},
	"honda": {
		"civic": {
			mpg: 33, reliability: 4.4, segment: types.SegmentCompact,
			trims: map[string]float64{"": 24250, "LX": 24250, "Sport": 26250, "Touring": 30850},
		},
		"accord": {
			mpg: 32, reliability: 4.4, segment: types.SegmentSedan,
			trims: map[string]float64{"": 27895, "LX": 27895, "EX-L": 33655, "Touring": 38890},
		},
		"cr-v": {
			mpg: 30, reliability: 4.3, segment: types.SegmentSUV,
			trims: map[string]float64{"": 29500, "LX": 29500, "EX": 32350, "Sport Touring": 39100},
		},
	},
	"ford": {
		"f-150": {
			mpg: 20, reliability: 3.7, segment: types.SegmentTruck,
			trims: map[string]float64{"": 36570, "XL": 36570, "XLT": 44125, "Lariat": 59020},
		},
		"mustang": {
			mpg: 22, reliability: 3.6, segment: types.SegmentSports,
			trims: map[string]float64{"": 30920, "EcoBoost": 30920, "GT": 42495, "Dark Horse": 59565},
		},
		"escape": {
			mpg: 28, reliability: 3.5, segment: types.SegmentSUV,
			trims: map[string]float64{"": 29495, "Active": 29495, "ST-Line": 31940, "Platinum": 38135},
		},
	},
	"chevrolet": {
		"silverado": {
			mpg: 19, reliability: 3.6, segment: types.SegmentTruck,
			trims: map[string]float64{"": 37000, "WT": 37000, "LT": 46400, "High Country": 63900},
		},
		"equinox": {
			mpg: 28, reliability: 3.5, segment: types.SegmentSUV,
			trims: map[string]float64{"": 28600, "LS": 28600, "LT": 30600, "RS": 34700},
		},
	},
	"tesla": {
		"model 3": {
			mpge: 132, electric: true, reliability: 3.8, segment: types.SegmentElectric,
			trims: map[string]float64{"": 42490, "Standard": 42490, "Long Range": 47490, "Performance": 54990},
		},
		"model y": {
			mpge: 122, electric: true, reliability: 3.7, segment: types.SegmentElectric,
			trims: map[string]float64{"": 44990, "Long Range": 48990, "Performance": 52490},
		},
	},
	"bmw": {
		"3 series": {
			mpg: 29, reliability: 3.4, segment: types.SegmentLuxury,
			trims: map[string]float64{"": 44500, "330i": 44500, "M340i": 59200},
		},
		"x5": {
			mpg: 25, reliability: 3.3, segment: types.SegmentLuxury,
			trims: map[string]float64{"": 65200, "sDrive40i": 65200, "M60i": 90100},
		},
	},
	"mercedes-benz": {
		"c-class": {
			mpg: 26, reliability: 3.2, segment: types.SegmentLuxury,
			trims: map[string]float64{"": 47100, "C 300": 47100, "AMG C 43": 62650},
		},
	},
	"subaru": {
		"outback": {
			mpg: 29, reliability: 4.2, segment: types.SegmentSUV,
			trims: map[string]float64{"": 29010, "Base": 29010, "Premium": 31360, "Touring XT": 42295},
		},
	},
	"hyundai": {
		"elantra": {
			mpg: 35, reliability: 4.0, segment: types.SegmentCompact,
			trims: map[string]float64{"": 22065, "SE": 22065, "SEL": 23265, "Limited": 27050},
		},
	},
	"nissan": {
		"rogue": {
			mpg: 30, reliability: 3.7, segment: types.SegmentSUV,
			trims: map[string]float64{"": 28320, "S": 28320, "SV": 30120, "Platinum": 38420},
		},
	},
	"jeep": {
		"wrangler": {
			mpg: 20, reliability: 3.4, segment: types.SegmentSUV,
			trims: map[string]float64{"": 32095, "Sport": 32095, "Sahara": 40690, "Rubicon": 48690},
		},
	},
}

// StaticVehicles is the built-in vehicle source. Safe for concurrent
// use: the catalog is never mutated.
type StaticVehicles struct{}

// NewStaticVehicles returns the built-in vehicle source.
func NewStaticVehicles() *StaticVehicles {
	return &StaticVehicles{}
}

// Characteristics returns fuel economy and reliability data for a
// vehicle. The model year does not change the answer for the static
// catalog; it exists for source implementations with per-year data.
func (s *StaticVehicles) Characteristics(vehicleMake, model string, year int) (types.VehicleCharacteristics, error) {
	rec, ok := lookupCatalog(vehicleMake, model)
	if !ok {
		return types.VehicleCharacteristics{}, errors.NotFound("vehicle", vehicleMake+" "+model)
	}
	return types.VehicleCharacteristics{
		MPG:              rec.mpg,
		MPGe:             rec.mpge,
		IsElectric:       rec.electric,
		ReliabilityScore: rec.reliability,
		MarketSegment:    rec.segment,
	}, nil
}

// TrimPrice returns the MSRP for a trim. An empty trim returns the
// base trim price.
func (s *StaticVehicles) TrimPrice(vehicleMake, model string, year int, trim string) (decimal.Decimal, error) {
	rec, ok := lookupCatalog(vehicleMake, model)
	if !ok {
		return decimal.Zero, errors.NotFound("vehicle", vehicleMake+" "+model)
	}
	if msrp, ok := rec.trims[trim]; ok {
		return decimal.NewFromFloat(msrp), nil
	}
	// Case-insensitive fallback
	for name, msrp := range rec.trims {
		if strings.EqualFold(name, trim) {
			return decimal.NewFromFloat(msrp), nil
		}
	}
	return decimal.Zero, errors.NotFound("trim", vehicleMake+" "+model+" "+trim)
}

func lookupCatalog(vehicleMake, model string) (vehicleRecord, bool) {
	models, ok := vehicleCatalog[strings.ToLower(strings.TrimSpace(vehicleMake))]
	if !ok {
		return vehicleRecord{}, false
	}
	rec, ok := models[strings.ToLower(strings.TrimSpace(model))]
	return rec, ok
}

// Makes lists the catalog manufacturers in no particular order.
func (s *StaticVehicles) Makes() []string {
	makes := make([]string, 0, len(vehicleCatalog))
	for m := range vehicleCatalog {
		makes = append(makes, m)
	}
	return makes
}
