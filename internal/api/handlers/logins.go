package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-check-service/internal/api/dto"
	"travel-check-service/internal/ports"
	"travel-check-service/internal/services"
)

// LoginHandler records login observations per account and reports the
// feasibility verdict against each account's previous login.
type LoginHandler struct {
	Repo  ports.LoginEventRepository
	Cache ports.LocationCache
}

// Dispatch on method: POST records a login, GET lists recent events.
func (h *LoginHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.check(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *LoginHandler) check(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginCheckRequest

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

	if strings.TrimSpace(req.AccountID) == "" {
		writeError(w, r, http.StatusBadRequest, "account_id is required")
		return
	}

	cfg, errMsg := evaluationConfig(req.MaxSpeedKmh, req.DecimalPrecision)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	observation, err := parseObservation("observation", dto.ObservationRequest{
		Timestamp: req.Timestamp,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.CheckLogin(r.Context(), services.CheckLoginRequest{
		AccountID:   req.AccountID,
		Observation: observation,
		Config:      cfg,
	}, h.Repo, h.Cache)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("check login failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LoginCheckResponse{
		EventID:   result.EventID,
		FirstSeen: result.FirstSeen,
	}
	if result.Previous != nil {
		res.Previous = &dto.ObservationResponse{
			Timestamp: result.Previous.Timestamp,
			Latitude:  result.Previous.Latitude,
			Longitude: result.Previous.Longitude,
		}
	}
	if result.Verdict != nil {
		verdict := feasibilityResponse(*result.Verdict)
		res.Verdict = &verdict
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *LoginHandler) list(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(r.URL.Query().Get("account_id"))
	if accountID == "" {
		writeError(w, r, http.StatusBadRequest, "account_id is required")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = parsed
	}

	events, err := h.Repo.ListEvents(r.Context(), accountID, limit)
	if err != nil {
		log.Printf("list login events failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLoginEventsResponse{
		Events: make([]dto.LoginEventResponse, 0, len(events)),
	}
	for _, e := range events {
		res.Events = append(res.Events, dto.LoginEventResponse{
			EventID:   e.EventID,
			AccountID: e.AccountID,
			Timestamp: e.Observation.Timestamp,
			Latitude:  e.Observation.Latitude,
			Longitude: e.Observation.Longitude,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
