package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"travel-check-service/internal/api/dto"
	"travel-check-service/internal/domain"
	"travel-check-service/internal/services"
)

// EvaluationHandler exposes the feasibility evaluator directly: the caller
// supplies both observations and receives the verdict. No state is touched.
type EvaluationHandler struct{}

func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EvaluationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	cfg, errMsg := evaluationConfig(req.MaxSpeedKmh, req.DecimalPrecision)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	first, err := parseObservation("first observation", req.First)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	second, err := parseObservation("second observation", req.Second)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.EvaluateTravel(first, second, cfg)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("evaluate travel failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, feasibilityResponse(result))
}

// evaluationConfig applies the named defaults and bounds-checks the caller's
// overrides. Zero max speed means "not supplied".
func evaluationConfig(maxSpeedKmh float64, decimalPrecision *int) (domain.EvaluationConfig, string) {
	cfg := domain.DefaultEvaluationConfig()

	if maxSpeedKmh != 0 {
		if maxSpeedKmh < 0 {
			return cfg, "max_speed_kmh must be positive"
		}
		cfg.MaxSpeedKmh = maxSpeedKmh
	}

	if decimalPrecision != nil {
		if *decimalPrecision < 0 || *decimalPrecision > 10 {
			return cfg, "decimal_precision must be between 0 and 10"
		}
		cfg.DecimalPrecision = *decimalPrecision
	}

	return cfg, ""
}
