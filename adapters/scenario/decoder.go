// Package scenario decodes ownership scenario files written in HCL.
package scenario

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// Decoder parses scenario files.
type Decoder struct {
	parser *hclparse.Parser
}

// NewDecoder creates a scenario decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		parser: hclparse.NewParser(),
	}
}

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "transaction", Required: true},
		{Name: "acquisition_value"},
		{Name: "annual_mileage", Required: true},
		{Name: "horizon_years", Required: true},
		{Name: "current_mileage"},
		{Name: "charging"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "vehicle"},
		{Type: "driver"},
		{Type: "location"},
		{Type: "insurance"},
		{Type: "financing"},
		{Type: "lease"},
	},
}

// DecodeFile reads and decodes one scenario file. The returned
// scenario is not yet validated; callers run Validate before use.
func (d *Decoder) DecodeFile(path string) (*types.OwnershipScenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Data("read scenario file", err)
	}
	return d.Decode(src, path)
}

// Decode decodes scenario source. filename is used in diagnostics.
func (d *Decoder) Decode(src []byte, filename string) (*types.OwnershipScenario, error) {
	file, diags := d.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse scenario file", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("decode scenario file", diags)
	}

	s := &types.OwnershipScenario{}

	for name, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Parsing("evaluate attribute "+name, diags)
		}
		switch name {
		case "transaction":
			s.Transaction = types.TransactionType(asString(val))
		case "acquisition_value":
			s.AcquisitionValue = asMoney(val)
		case "annual_mileage":
			s.AnnualMileage = asInt(val)
		case "horizon_years":
			s.HorizonYears = asInt(val)
		case "current_mileage":
			s.CurrentMileage = asInt(val)
		case "charging":
			s.Charging = types.ChargingPreference(asString(val))
		}
	}

	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, errors.Parsing("decode block "+block.Type, diags)
		}
		values := make(map[string]hcl.Expression, len(attrs))
		for name, attr := range attrs {
			values[name] = attr.Expr
		}

		switch block.Type {
		case "vehicle":
			decodeVehicle(values, &s.Vehicle)
		case "driver":
			decodeDriver(values, &s.Driver)
		case "location":
			decodeLocation(values, &s.Location)
		case "insurance":
			decodeInsurance(values, &s.Insurance)
		case "financing":
			s.Financing = decodeFinancing(values)
		case "lease":
			s.Lease = decodeLease(values)
		}
	}

	return s, nil
}

func eval(exprs map[string]hcl.Expression, name string) (cty.Value, bool) {
	expr, ok := exprs[name]
	if !ok {
		return cty.NilVal, false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false
	}
	return val, true
}

func decodeVehicle(exprs map[string]hcl.Expression, out *types.VehicleIdentity) {
	if v, ok := eval(exprs, "make"); ok {
		out.Make = asString(v)
	}
	if v, ok := eval(exprs, "model"); ok {
		out.Model = asString(v)
	}
	if v, ok := eval(exprs, "model_year"); ok {
		out.ModelYear = asInt(v)
	}
	if v, ok := eval(exprs, "trim"); ok {
		out.Trim = asString(v)
	}
}

func decodeDriver(exprs map[string]hcl.Expression, out *types.DriverProfile) {
	if v, ok := eval(exprs, "age"); ok {
		out.Age = asInt(v)
	}
	if v, ok := eval(exprs, "gross_income"); ok {
		out.GrossIncome = asMoney(v)
	}
	if v, ok := eval(exprs, "driving_style"); ok {
		out.DrivingStyle = types.DrivingStyle(asString(v))
	}
	if v, ok := eval(exprs, "terrain"); ok {
		out.Terrain = types.Terrain(asString(v))
	}
	if v, ok := eval(exprs, "household_vehicles"); ok {
		out.HouseholdVehicleCount = asInt(v)
	}
}

func decodeLocation(exprs map[string]hcl.Expression, out *types.Location) {
	if v, ok := eval(exprs, "state"); ok {
		out.State = asString(v)
	}
	if v, ok := eval(exprs, "zip"); ok {
		out.ZIP = asString(v)
	}
	if v, ok := eval(exprs, "geography"); ok {
		out.Geography = types.GeographyType(asString(v))
	}
	if v, ok := eval(exprs, "fuel_price"); ok {
		out.FuelPrice = asMoney(v)
	}
	if v, ok := eval(exprs, "electricity_rate"); ok {
		out.ElectricityRate = asMoney(v)
	}
}

func decodeInsurance(exprs map[string]hcl.Expression, out *types.InsuranceProfile) {
	if v, ok := eval(exprs, "coverage"); ok {
		out.Coverage = types.CoverageType(asString(v))
	}
	if v, ok := eval(exprs, "shop"); ok {
		out.Shop = types.ShopType(asString(v))
	}
}

func decodeFinancing(exprs map[string]hcl.Expression) *types.FinancingTerms {
	f := &types.FinancingTerms{}
	if v, ok := eval(exprs, "loan_amount"); ok {
		f.LoanAmount = asMoney(v)
	}
	if v, ok := eval(exprs, "annual_rate_percent"); ok {
		f.AnnualRatePercent = asFloat(v)
	}
	if v, ok := eval(exprs, "term_years"); ok {
		f.TermYears = asInt(v)
	}
	return f
}

func decodeLease(exprs map[string]hcl.Expression) *types.LeaseTerms {
	l := &types.LeaseTerms{}
	if v, ok := eval(exprs, "monthly_payment"); ok {
		l.MonthlyPayment = asMoney(v)
	}
	if v, ok := eval(exprs, "annual_mileage_limit"); ok {
		l.AnnualMileageLimit = asInt(v)
	}
	if v, ok := eval(exprs, "down_payment"); ok {
		l.DownPayment = asMoney(v)
	}
	return l
}
