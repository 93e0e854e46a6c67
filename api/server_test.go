// Package api - HTTP surface tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/engine"
	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
	"vehicle-cost/refdata"
)

func testServer() *Server {
	calc := engine.New(refdata.NewStaticVehicles(), refdata.NewRegions(), engine.DefaultConfig(2025))
	return NewServer(calc, "test", 2025)
}

func scenarioBody(t *testing.T, s types.OwnershipScenario) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(EstimateRequest{Scenario: s})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(body)
}

func camryScenario() types.OwnershipScenario {
	return types.OwnershipScenario{
		Vehicle:          types.VehicleIdentity{Make: "Toyota", Model: "Camry", ModelYear: 2025},
		Transaction:      types.TransactionPurchase,
		AcquisitionValue: decimal.NewFromInt(28400),
		AnnualMileage:    12000,
		HorizonYears:     5,
		Driver:           types.DriverProfile{Age: 40, GrossIncome: decimal.NewFromInt(90000)},
		Location:         types.Location{State: "OH"},
	}
}

// TestEstimateEndpoint proves a valid scenario returns a complete
// result with execution metadata.
func TestEstimateEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/estimate", scenarioBody(t, camryScenario()))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("no result in response")
	}
	if !resp.Result.Summary.TotalCostOfOwnership.IsPositive() {
		t.Error("TCO not positive")
	}
	if len(resp.Result.AnnualBreakdown) != 5 {
		t.Errorf("breakdown years = %d, want 5", len(resp.Result.AnnualBreakdown))
	}
	if resp.Metadata.InputHash == "" || resp.Metadata.Version != "test" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
}

// TestEstimateBadJSON proves malformed bodies get a 400 parsing
// failure envelope.
func TestEstimateBadJSON(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Error types.Failure `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error.Code != string(errors.TypeParsing) {
		t.Errorf("code = %s, want %s", body.Error.Code, errors.TypeParsing)
	}
}

// TestEstimateInvalidScenario proves contract violations map to 400
// with the engine's input-error code.
func TestEstimateInvalidScenario(t *testing.T) {
	srv := testServer()

	s := camryScenario()
	s.HorizonYears = 0
	req := httptest.NewRequest(http.MethodPost, "/estimate", scenarioBody(t, s))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Error types.Failure `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error.Code != string(errors.TypeInput) {
		t.Errorf("code = %s, want %s", body.Error.Code, errors.TypeInput)
	}
}

// TestCompareEndpoint proves entries come back ranked cheapest-first
// with deltas against the best.
func TestCompareEndpoint(t *testing.T) {
	srv := testServer()

	camry := camryScenario()
	bmw := camryScenario()
	bmw.Vehicle = types.VehicleIdentity{Make: "BMW", Model: "3 Series", ModelYear: 2025}
	bmw.AcquisitionValue = decimal.NewFromInt(45000)

	body, err := json.Marshal(CompareRequest{Scenarios: []types.OwnershipScenario{bmw, camry}})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/compare", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp CompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(resp.Entries))
	}

	first, second := resp.Entries[0], resp.Entries[1]
	if first.Rank != 1 || second.Rank != 2 {
		t.Errorf("ranks = %d, %d", first.Rank, second.Rank)
	}
	if first.Vehicle.Make != "Toyota" {
		t.Errorf("cheapest entry is %s, want Toyota", first.Vehicle.Make)
	}
	if !first.DeltaFromBest.IsZero() {
		t.Errorf("best entry delta = %s, want 0", first.DeltaFromBest)
	}
	if !second.DeltaFromBest.IsPositive() {
		t.Errorf("second entry delta = %s, want positive", second.DeltaFromBest)
	}
	if second.Summary.TotalCostOfOwnership.LessThan(first.Summary.TotalCostOfOwnership) {
		t.Error("entries not sorted by total cost of ownership")
	}
}

// TestCompareRequiresTwoScenarios proves a single-scenario comparison
// is rejected up front.
func TestCompareRequiresTwoScenarios(t *testing.T) {
	srv := testServer()

	body, _ := json.Marshal(CompareRequest{Scenarios: []types.OwnershipScenario{camryScenario()}})
	req := httptest.NewRequest(http.MethodPost, "/compare", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHealthAndVersion prove the operational endpoints answer.
func TestHealthAndVersion(t *testing.T) {
	srv := testServer()

	for _, path := range []string{"/health", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("GET %s content type = %s", path, ct)
		}
	}
}

// TestEstimateIsDeterministic proves two identical requests produce
// the same input hash and result.
func TestEstimateIsDeterministic(t *testing.T) {
	srv := testServer()

	run := func() EstimateResponse {
		req := httptest.NewRequest(http.MethodPost, "/estimate", scenarioBody(t, camryScenario()))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		var resp EstimateResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return resp
	}

	a, b := run(), run()
	if a.Metadata.InputHash != b.Metadata.InputHash {
		t.Error("identical requests hashed differently")
	}

	ar, _ := json.Marshal(a.Result)
	br, _ := json.Marshal(b.Result)
	if string(ar) != string(br) {
		t.Error("identical requests produced different results")
	}
}
