package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/XavierBriggs/Midas/internal/registry"
	"github.com/XavierBriggs/Midas/internal/scanner"
	"github.com/XavierBriggs/Midas/pkg/models"
	"github.com/go-chi/chi/v5"
)

// apiKeyHeader carries a per-request provider credential; absent, the
// server-configured key is used
const apiKeyHeader = "X-Odds-Api-Key"

// Handler contains dependencies for HTTP handlers
type Handler struct {
	sportRegistry *registry.SportRegistry
	scanners      map[string]*scanner.Scanner
	defaultAPIKey string
}

// NewHandler creates a new handler. scanners is keyed by sport key and must
// cover every registered sport.
func NewHandler(sportRegistry *registry.SportRegistry, scanners map[string]*scanner.Scanner, defaultAPIKey string) *Handler {
	return &Handler{
		sportRegistry: sportRegistry,
		scanners:      scanners,
		defaultAPIKey: defaultAPIKey,
	}
}

// HealthCheck returns service health and the registered sports
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "midas",
		"sports":  h.sportRegistry.Keys(),
	})
}

// GetOpportunities runs an arbitrage scan for the requested sport.
// Query params: stake (base stake, bounded), multiplier (one of the allowed
// set). The effective stake passed to the calculator is stake * multiplier.
func (h *Handler) GetOpportunities(w http.ResponseWriter, r *http.Request) {
	sportKey := chi.URLParam(r, "sportKey")

	sport, ok := h.sportRegistry.Get(sportKey)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown sport: %s", sportKey))
		return
	}

	apiKey := r.Header.Get(apiKeyHeader)
	if apiKey == "" {
		apiKey = h.defaultAPIKey
	}
	if apiKey == "" {
		respondError(w, http.StatusUnauthorized, "missing OddsAPI key: set "+apiKeyHeader+" or configure ODDS_API_KEY")
		return
	}

	baseStake := sport.DefaultBaseStake()
	if raw := r.URL.Query().Get("stake"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid stake: %s", raw))
			return
		}
		baseStake = parsed
	}
	if err := sport.ValidateStake(baseStake); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	multiplier := 1
	if raw := r.URL.Query().Get("multiplier"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid multiplier: %s", raw))
			return
		}
		multiplier = parsed
	}
	if err := sport.ValidateMultiplier(multiplier); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	arbs, err := h.scanners[sportKey].Scan(r.Context(), apiKey, baseStake*float64(multiplier))
	if err != nil {
		if scanErr, ok := models.AsScanError(err); ok {
			respondError(w, scanErr.HTTPStatus(), scanErr.UserMessage())
			return
		}
		respondError(w, http.StatusInternalServerError, "scan failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sport":         sportKey,
		"base_stake":    baseStake,
		"multiplier":    multiplier,
		"total_stake":   baseStake * float64(multiplier),
		"count":         len(arbs),
		"opportunities": arbs,
	})
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error": message,
	})
}
