// Package handler provides HTTP handlers for the rankings API. Handlers read
// the columnar data directory directly — there is no service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/diazpablogon/footballstats/internal/api/respond"
	"github.com/diazpablogon/footballstats/internal/cache"
	"github.com/diazpablogon/footballstats/internal/config"
	"github.com/diazpablogon/footballstats/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store *store.Store
	cache *cache.Cache
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(s *store.Store, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{store: s, cache: c, cfg: cfg}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "footballstats API",
		"version": "1.0.0",
		"status":  "running",
		"data":    h.store.Root(),
	})
}

// HealthCheck returns basic health status and whether the data directory is
// readable.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if _, err := os.Stat(h.store.Root()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	respond.WriteJSONObject(w, code, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetLeagues lists the seasons and leagues present in the data directory.
func (h *Handler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	const key = "leagues"
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLListing, true)
		return
	}

	seasons, err := h.store.ListSeasons()
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "LIST_FAILED", "Could not read data directory")
		return
	}

	listing := make(map[string][]string, len(seasons))
	for _, season := range seasons {
		leagues, err := h.store.ListLeagues(season)
		if err != nil {
			respond.WriteError(w, http.StatusInternalServerError, "LIST_FAILED", "Could not read data directory")
			return
		}
		listing[season] = leagues
	}

	data, err := json.Marshal(map[string]interface{}{"seasons": listing})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Could not encode listing")
		return
	}
	etag := h.cache.Set(key, data, cache.TTLListing)
	respond.WriteJSON(w, data, etag, cache.TTLListing, false)
}

// GetRanking serves the standings table for one league season.
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	season := chi.URLParam(r, "season")
	league := chi.URLParam(r, "league")
	key := "ranking:" + season + ":" + league

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLRanking, true)
		return
	}

	table, err := h.store.LoadRanking(season, league)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No ranking for that league season")
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "READ_FAILED", "Could not read ranking")
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"season":    season,
		"league":    league,
		"standings": table,
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Could not encode ranking")
		return
	}
	etag := h.cache.Set(key, data, cache.TTLRanking)
	respond.WriteJSON(w, data, etag, cache.TTLRanking, false)
}
