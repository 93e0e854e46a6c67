// Package scenario - Safe CTY value conversion
// CTY values are never blindly passed through; unknown and null values
// decode to zero values instead of panicking.
package scenario

import (
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

func asString(val cty.Value) string {
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
		return ""
	}
	return val.AsString()
}

func asFloat(val cty.Value) float64 {
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return 0
	}
	f, _ := val.AsBigFloat().Float64()
	return f
}

func asInt(val cty.Value) int {
	return int(asFloat(val))
}

func asMoney(val cty.Value) decimal.Decimal {
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', 4))
	if err != nil {
		return decimal.Zero
	}
	return d
}
