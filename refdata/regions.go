// Package refdata - Regional pricing and ZIP lookups
package refdata

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// stateFuelPrices are state average fuel prices, $/gallon.
var stateFuelPrices = map[string]float64{
	"AL": 3.20, "AK": 4.15, "AZ": 3.85, "AR": 3.10, "CA": 4.65, "CO": 3.50, "CT": 3.75,
	"DE": 3.45, "FL": 3.40, "GA": 3.25, "HI": 4.95, "ID": 3.65, "IL": 3.60, "IN": 3.35,
	"IA": 3.25, "KS": 3.15, "KY": 3.30, "LA": 3.05, "ME": 3.70, "MD": 3.55, "MA": 3.80,
	"MI": 3.50, "MN": 3.45, "MS": 3.10, "MO": 3.20, "MT": 3.60, "NE": 3.30, "NV": 4.05,
	"NH": 3.65, "NJ": 3.70, "NM": 3.40, "NY": 3.85, "NC": 3.35, "ND": 3.25, "OH": 3.35,
	"OK": 3.15, "OR": 4.10, "PA": 3.65, "RI": 3.75, "SC": 3.25, "SD": 3.35, "TN": 3.20,
	"TX": 3.25, "UT": 3.75, "VT": 3.70, "VA": 3.45, "WA": 4.20, "WV": 3.40, "WI": 3.45,
	"WY": 3.50,
}

// stateElectricityRates are state average residential rates, $/kWh.
var stateElectricityRates = map[string]float64{
	"AL": 0.11, "AK": 0.22, "AZ": 0.12, "AR": 0.09, "CA": 0.17, "CO": 0.11, "CT": 0.18,
	"DE": 0.12, "FL": 0.11, "GA": 0.10, "HI": 0.28, "ID": 0.08, "IL": 0.12, "IN": 0.11,
	"IA": 0.10, "KS": 0.11, "KY": 0.09, "LA": 0.08, "ME": 0.14, "MD": 0.13, "MA": 0.19,
	"MI": 0.11, "MN": 0.11, "MS": 0.10, "MO": 0.10, "MT": 0.10, "NE": 0.09, "NV": 0.11,
	"NH": 0.16, "NJ": 0.14, "NM": 0.12, "NY": 0.15, "NC": 0.10, "ND": 0.09, "OH": 0.11,
	"OK": 0.10, "OR": 0.09, "PA": 0.12, "RI": 0.18, "SC": 0.11, "SD": 0.10, "TN": 0.10,
	"TX": 0.10, "UT": 0.09, "VT": 0.15, "VA": 0.11, "WA": 0.08, "WV": 0.10, "WI": 0.12,
	"WY": 0.10,
}

// geographyMultipliers are the base regional cost factors by density.
var geographyMultipliers = map[types.GeographyType]float64{
	types.GeographyUrban:    1.15,
	types.GeographySuburban: 1.00,
	types.GeographyRural:    0.85,
}

// highCostStates carry a 10% surcharge on regional costs;
// lowCostStates a 10% discount.
var highCostStates = map[string]bool{
	"CA": true, "NY": true, "HI": true, "MA": true, "CT": true, "NJ": true, "AK": true,
}

var lowCostStates = map[string]bool{
	"MS": true, "AL": true, "AR": true, "WV": true, "OK": true, "KS": true, "ND": true, "SD": true,
}

type zipRange struct {
	lo, hi int
}

// stateZIPRanges map ZIP numeric ranges to states.
var stateZIPRanges = map[string][]zipRange{
	"AL": {{35000, 36999}},
	"AK": {{99500, 99999}},
	"AZ": {{85000, 86599}},
	"AR": {{71600, 72999}},
	"CA": {{90000, 96199}},
	"CO": {{80000, 81699}},
	"CT": {{6000, 6999}},
	"DE": {{19700, 19999}},
	"FL": {{32000, 34999}},
	"GA": {{30000, 31999}, {39800, 39999}},
	"HI": {{96700, 96899}},
	"ID": {{83200, 83899}},
	"IL": {{60000, 62999}},
	"IN": {{46000, 47999}},
	"IA": {{50000, 52899}},
	"KS": {{66000, 67999}},
	"KY": {{40000, 42799}},
	"LA": {{70000, 71499}},
	"ME": {{3900, 4999}},
	"MD": {{20600, 21999}},
	"MA": {{1000, 2799}},
	"MI": {{48000, 49999}},
	"MN": {{55000, 56799}},
	"MS": {{38600, 39799}},
	"MO": {{63000, 65999}},
	"MT": {{59000, 59999}},
	"NE": {{68000, 69399}},
	"NV": {{89000, 89899}},
	"NH": {{3000, 3899}},
	"NJ": {{7000, 8999}},
	"NM": {{87000, 88499}},
	"NY": {{10000, 14999}},
	"NC": {{27000, 28999}},
	"ND": {{58000, 58899}},
	"OH": {{43000, 45999}},
	"OK": {{73000, 74999}},
	"OR": {{97000, 97999}},
	"PA": {{15000, 19699}},
	"RI": {{2800, 2999}},
	"SC": {{29000, 29999}},
	"SD": {{57000, 57799}},
	"TN": {{37000, 38599}},
	"TX": {{75000, 79999}},
	"UT": {{84000, 84799}},
	"VT": {{5000, 5999}},
	"VA": {{20000, 24699}},
	"WA": {{98000, 99499}},
	"WV": {{24700, 26899}},
	"WI": {{53000, 54999}},
	"WY": {{82000, 83199}},
}

// urbanZIPRanges mark major metro cores.
var urbanZIPRanges = []zipRange{
	{10001, 10299}, {11101, 11299}, // New York
	{90001, 90099}, {90201, 90299}, {91401, 91499}, // Los Angeles
	{60601, 60661}, // Chicago
	{77001, 77099}, // Houston
	{85001, 85099}, {85201, 85299}, // Phoenix / Mesa
	{19101, 19199}, // Philadelphia
	{78201, 78299}, // San Antonio
	{92101, 92199}, // San Diego
	{75201, 75299}, // Dallas
	{95101, 95199}, {94301, 94399}, // San Jose / Palo Alto
	{78701, 78799}, // Austin
	{32201, 32299}, // Jacksonville
	{94102, 94199}, // San Francisco
	{43201, 43299}, // Columbus
	{28201, 28299}, // Charlotte
	{76101, 76199}, // Fort Worth
	{46201, 46299}, // Indianapolis
	{98101, 98199}, // Seattle
	{80201, 80299}, // Denver
	{20001, 20099}, // Washington DC
	{2101, 2299},   // Boston
	{79901, 79999}, // El Paso
	{48201, 48299}, // Detroit
	{37201, 37299}, // Nashville
	{97201, 97299}, // Portland
	{38101, 38199}, // Memphis
	{73101, 73199}, // Oklahoma City
	{89101, 89199}, // Las Vegas
	{40201, 40299}, // Louisville
	{21201, 21299}, // Baltimore
	{53201, 53299}, // Milwaukee
	{87101, 87199}, // Albuquerque
	{85701, 85799}, // Tucson
	{93701, 93799}, // Fresno
	{95801, 95899}, // Sacramento
	{64101, 64199}, // Kansas City
	{30301, 30399}, // Atlanta
	{80901, 80999}, // Colorado Springs
	{68101, 68199}, // Omaha
	{27601, 27699}, // Raleigh
	{33101, 33199}, // Miami
	{44101, 44199}, // Cleveland
	{74101, 74199}, // Tulsa
	{55401, 55499}, // Minneapolis
	{67201, 67299}, // Wichita
	{70112, 70199}, // New Orleans
}

// ruralZIPRanges mark very low density areas.
var ruralZIPRanges = []zipRange{
	{99501, 99999}, // Alaska
	{59001, 59099}, // Montana
	{82001, 82999}, // Wyoming
	{58001, 58099}, // North Dakota
	{57001, 57099}, // South Dakota
	{89001, 89099}, // Nevada
	{83001, 83199}, // Idaho
	{5001, 5099},   // Vermont
	{4001, 4199},   // Maine
	{24701, 25999}, // West Virginia
}

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ValidateZIP reports whether a string is a well-formed 5-digit ZIP.
func ValidateZIP(zip string) bool {
	return zipPattern.MatchString(zip)
}

// StateFromZIP resolves the state a ZIP code falls in.
func StateFromZIP(zip string) (string, error) {
	if !ValidateZIP(zip) {
		return "", errors.Inputf("invalid ZIP code: %q", zip)
	}
	n, _ := strconv.Atoi(zip)
	for state, ranges := range stateZIPRanges {
		for _, r := range ranges {
			if n >= r.lo && n <= r.hi {
				return state, nil
			}
		}
	}
	return "", errors.NotFound("state for ZIP", zip)
}

// GeographyFromZIP classifies a ZIP code's density. Unknown ZIPs
// default to suburban.
func GeographyFromZIP(zip string) types.GeographyType {
	if !ValidateZIP(zip) {
		return types.GeographySuburban
	}
	n, _ := strconv.Atoi(zip)
	for _, r := range urbanZIPRanges {
		if n >= r.lo && n <= r.hi {
			return types.GeographyUrban
		}
	}
	for _, r := range ruralZIPRanges {
		if n >= r.lo && n <= r.hi {
			return types.GeographyRural
		}
	}
	return types.GeographySuburban
}

// Regions is the built-in regional pricing source. Safe for
// concurrent use.
type Regions struct{}

// NewRegions returns the built-in regional source.
func NewRegions() *Regions {
	return &Regions{}
}

// CostMultiplier returns the regional scaling factor for maintenance
// and insurance bases: geography density base adjusted for high- and
// low-cost states.
func (r *Regions) CostMultiplier(state string, geography types.GeographyType) (float64, error) {
	base, ok := geographyMultipliers[geography]
	if !ok {
		base = 1.0
	}
	if _, known := stateFuelPrices[state]; !known {
		return 0, errors.NotFound("state", state)
	}
	switch {
	case highCostStates[state]:
		base *= 1.1
	case lowCostStates[state]:
		base *= 0.9
	}
	return base, nil
}

// FuelPrice returns the state average fuel price.
func (r *Regions) FuelPrice(state string) (decimal.Decimal, error) {
	price, ok := stateFuelPrices[state]
	if !ok {
		return decimal.Zero, errors.NotFound("fuel price for state", state)
	}
	return decimal.NewFromFloat(price), nil
}

// ElectricityRate returns the state average electricity rate.
func (r *Regions) ElectricityRate(state string) (decimal.Decimal, error) {
	rate, ok := stateElectricityRates[state]
	if !ok {
		return decimal.Zero, errors.NotFound("electricity rate for state", state)
	}
	return decimal.NewFromFloat(rate), nil
}

// ResolveLocation fills a location's state, geography and energy
// prices from its ZIP code, keeping any values the caller already set.
func (r *Regions) ResolveLocation(loc types.Location) (types.Location, error) {
	if loc.ZIP == "" {
		return loc, nil
	}
	state, err := StateFromZIP(loc.ZIP)
	if err != nil {
		return loc, err
	}
	if loc.State == "" {
		loc.State = state
	}
	if loc.Geography == "" {
		loc.Geography = GeographyFromZIP(loc.ZIP)
	}
	if !loc.FuelPrice.IsPositive() {
		if price, err := r.FuelPrice(loc.State); err == nil {
			loc.FuelPrice = price
		}
	}
	if !loc.ElectricityRate.IsPositive() {
		if rate, err := r.ElectricityRate(loc.State); err == nil {
			loc.ElectricityRate = rate
		}
	}
	return loc, nil
}
