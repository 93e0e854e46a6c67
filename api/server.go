// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine invocation
// and output serialization. It never performs cost logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vehicle-cost/core/engine"
	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// Server is the API server.
type Server struct {
	calc    *engine.Calculator
	router  chi.Router
	version string
	refYear int
}

// NewServer creates an API server around a calculator.
func NewServer(calc *engine.Calculator, version string, referenceYear int) *Server {
	s := &Server{
		calc:    calc,
		version: version,
		refYear: referenceYear,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/estimate", s.handleEstimate)
	r.Post("/compare", s.handleCompare)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeFailure(w, &types.Failure{Code: string(errors.TypeParsing), Message: err.Error()}, http.StatusBadRequest)
		return
	}

	result, err := s.calc.Calculate(req.Scenario)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	s.writeJSON(w, EstimateResponse{
		Result:   result,
		Metadata: s.metadata(&req, start),
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeFailure(w, &types.Failure{Code: string(errors.TypeParsing), Message: err.Error()}, http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) < 2 {
		s.writeFailure(w, &types.Failure{
			Code:    string(errors.TypeInput),
			Message: "comparison requires at least two scenarios",
		}, http.StatusBadRequest)
		return
	}

	entries := make([]CompareEntry, 0, len(req.Scenarios))
	for _, scenario := range req.Scenarios {
		result, err := s.calc.Calculate(scenario)
		if err != nil {
			s.writeCalcError(w, err)
			return
		}
		entries = append(entries, CompareEntry{
			Vehicle: scenario.Vehicle,
			Summary: result.Summary,
			Segment: result.Segment,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Summary.TotalCostOfOwnership.LessThan(entries[j].Summary.TotalCostOfOwnership)
	})
	best := entries[0].Summary.TotalCostOfOwnership
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].DeltaFromBest = entries[i].Summary.TotalCostOfOwnership.Sub(best)
	}

	s.writeJSON(w, CompareResponse{
		Entries:  entries,
		Metadata: s.metadata(&req, start),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"version":        s.version,
		"engine":         "vehicle-cost",
		"reference_year": s.refYear,
	}, http.StatusOK)
}

func (s *Server) metadata(req interface{}, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		InputHash:     computeInputHash(req),
		Version:       s.version,
		ReferenceYear: s.refYear,
		DurationMs:    time.Since(start).Milliseconds(),
	}
}

// writeCalcError maps a calculation error onto the failure envelope.
// Input errors are the caller's fault; anything else is a 500.
func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	failure := engine.FailureFrom(err)
	status := http.StatusInternalServerError
	if failure.Code == string(errors.TypeInput) {
		status = http.StatusBadRequest
	}
	s.writeFailure(w, failure, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeFailure(w http.ResponseWriter, failure *types.Failure, status int) {
	s.writeJSON(w, errorBody{Error: *failure}, status)
}

func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
