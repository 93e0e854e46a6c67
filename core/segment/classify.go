// Package segment classifies vehicles into market segments.
// Classification is a pure function of make/model keyword matching with
// a fixed priority order, deterministic and total: every input maps to
// exactly one segment, unrecognized vehicles default to sedan.
package segment

import (
	"strings"

	"vehicle-cost/core/types"
)

// electricMakes are manufacturers that only sell electric vehicles
var electricMakes = []string{"tesla", "rivian", "lucid"}

// electricTerms identify electric models of mixed-lineup makes
var electricTerms = []string{
	"electric", "ev", "volt", "leaf", "prius prime", "ioniq",
	"model s", "model 3", "model x", "model y", "i3", "i4", "ix",
	"etron", "e-tron", "taycan", "lightning", "bolt", "clarity",
}

// luxuryMakes are luxury-brand manufacturers
var luxuryMakes = []string{
	"bmw", "mercedes-benz", "audi", "lexus", "acura", "infiniti",
	"cadillac", "lincoln", "genesis", "volvo", "jaguar", "land rover",
	"porsche", "maserati", "bentley", "rolls-royce",
}

var sportsTerms = []string{
	"corvette", "mustang", "camaro", "challenger", "charger",
	"911", "cayman", "boxster", "gt", "sport", "rs", "m3", "m5",
	"amg", "type r", "sti", "wrx", "z", "supra", "nsx",
}

var truckTerms = []string{
	"f-150", "f-250", "f-350", "silverado", "sierra", "ram 1500",
	"ram 2500", "tundra", "tacoma", "frontier", "ridgeline",
	"colorado", "canyon", "ranger", "gladiator", "titan", "truck",
}

var suvTerms = []string{
	"suburban", "tahoe", "yukon", "expedition", "navigator",
	"escalade", "pilot", "passport", "ridgeline", "highlander",
	"rav4", "cr-v", "hr-v", "santa fe", "tucson", "sorento",
	"telluride", "palisade", "cx-5", "cx-9", "outback", "forester",
	"ascent", "pathfinder", "armada", "durango", "grand cherokee",
	"cherokee", "compass", "renegade", "wrangler", "suv",
}

var compactTerms = []string{
	"civic", "corolla", "elantra", "forte", "sentra", "versa",
	"mazda3", "impreza", "crosstrek", "jetta", "golf",
}

var economyTerms = []string{
	"spark", "mirage", "rio", "accent", "yaris", "fit",
}

// Classify returns the market segment for a make/model pair.
// Priority: electric > luxury brand > sports > truck > suv > compact >
// economy > sedan (default).
func Classify(vehicleMake, model string) types.Segment {
	makeLower := strings.ToLower(strings.TrimSpace(vehicleMake))
	modelLower := strings.ToLower(strings.TrimSpace(model))

	for _, m := range electricMakes {
		if makeLower == m {
			return types.SegmentElectric
		}
	}
	if containsAny(modelLower, electricTerms) {
		return types.SegmentElectric
	}

	for _, m := range luxuryMakes {
		if makeLower == m {
			return types.SegmentLuxury
		}
	}

	if containsAny(modelLower, sportsTerms) {
		return types.SegmentSports
	}
	if containsAny(modelLower, truckTerms) {
		return types.SegmentTruck
	}
	if containsAny(modelLower, suvTerms) {
		return types.SegmentSUV
	}
	if containsAny(modelLower, compactTerms) {
		return types.SegmentCompact
	}
	if containsAny(modelLower, economyTerms) {
		return types.SegmentEconomy
	}

	return types.SegmentSedan
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
