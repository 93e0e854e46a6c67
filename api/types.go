// Package api - Request and response types
package api

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// EstimateRequest is the body of POST /estimate.
type EstimateRequest struct {
	// Scenario is the fully-specified ownership scenario
	Scenario types.OwnershipScenario `json:"scenario"`
}

// EstimateResponse is the body of a successful estimate.
type EstimateResponse struct {
	// Result is the full calculation result
	Result *types.Result `json:"result"`

	// Metadata describes the execution
	Metadata ResponseMetadata `json:"metadata"`
}

// CompareRequest is the body of POST /compare.
type CompareRequest struct {
	// Scenarios are the vehicles to compare, at least two
	Scenarios []types.OwnershipScenario `json:"scenarios"`
}

// CompareEntry is one ranked comparison row.
type CompareEntry struct {
	// Vehicle identifies the compared vehicle
	Vehicle types.VehicleIdentity `json:"vehicle"`

	// Rank is 1 for the cheapest total cost of ownership
	Rank int `json:"rank"`

	// Summary is the aggregate result
	Summary types.ResultSummary `json:"summary"`

	// Segment is the classified market segment
	Segment types.Segment `json:"segment"`

	// DeltaFromBest is the TCO difference to the cheapest entry
	DeltaFromBest decimal.Decimal `json:"delta_from_best"`
}

// CompareResponse is the body of a successful comparison.
type CompareResponse struct {
	// Entries are ranked cheapest-first by total cost of ownership
	Entries []CompareEntry `json:"entries"`

	// Metadata describes the execution
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains execution context.
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// Version is the engine version
	Version string `json:"version"`

	// ReferenceYear anchors the calculation
	ReferenceYear int `json:"reference_year"`

	// DurationMs is the handling time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// errorBody is the uniform error envelope.
type errorBody struct {
	Error types.Failure `json:"error"`
}
