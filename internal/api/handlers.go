// Package api provides HTTP API handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/scamshield/railshield/internal/analyzer"
	"github.com/scamshield/railshield/internal/database"
	"github.com/scamshield/railshield/internal/models"
	"github.com/scamshield/railshield/internal/validation"
)

// Handler contains all HTTP handlers.
type Handler struct {
	analyzer *analyzer.Analyzer
	engine   *validation.Engine
	store    database.Store
}

// NewHandler creates a new handler.
func NewHandler(a *analyzer.Analyzer, engine *validation.Engine, store database.Store) *Handler {
	return &Handler{
		analyzer: a,
		engine:   engine,
		store:    store,
	}
}

// HealthCheck returns the service health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "ScamShield Rail API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// Analyze classifies a complaint description and extracts entities. Empty
// descriptions are not an error; they yield the generic result.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.analyzer.Analyze(req.Description, req.TrainNo, req.ItemName)
	writeJSON(w, http.StatusOK, result)
}

// ListComplaints returns all complaints.
func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.store.ListComplaints(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list complaints")
		writeError(w, http.StatusInternalServerError, "Failed to list complaints")
		return
	}
	if complaints == nil {
		complaints = []*models.Complaint{}
	}
	writeJSON(w, http.StatusOK, complaints)
}

// CreateComplaint files a new complaint. The store assigns the ID, ticket
// ID and timestamp.
func (h *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := req.User
	if user == nil {
		user = &models.User{ID: 1, Name: "Anonymous"}
	}

	complaint := &models.Complaint{
		TrainNo:       req.TrainNo,
		VendorName:    req.VendorName,
		ItemName:      req.ItemName,
		ReportedPrice: req.ReportedPrice,
		MRP:           req.MRP,
		Description:   req.Description,
		EvidenceURL:   req.EvidenceURL,
		Geolocation:   req.Geolocation,
		User:          user,
	}

	if err := h.store.CreateComplaint(r.Context(), complaint); err != nil {
		log.Error().Err(err).Msg("Failed to create complaint")
		writeError(w, http.StatusInternalServerError, "Failed to create complaint")
		return
	}

	log.Info().Int64("id", complaint.ID).Str("ticket", complaint.TicketID).Msg("Complaint filed")
	writeJSON(w, http.StatusCreated, complaint)
}

// GetComplaint returns a complaint by ID.
func (h *Handler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	complaint, err := h.store.GetComplaint(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get complaint")
		writeError(w, http.StatusInternalServerError, "Failed to get complaint")
		return
	}
	if complaint == nil {
		writeError(w, http.StatusNotFound, "Complaint not found")
		return
	}

	writeJSON(w, http.StatusOK, complaint)
}

// UpdateComplaint overlays the request body onto an existing complaint.
// Identity fields and vote counters cannot be changed through this endpoint.
func (h *Handler) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	complaint, err := h.store.GetComplaint(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get complaint")
		writeError(w, http.StatusInternalServerError, "Failed to get complaint")
		return
	}
	if complaint == nil {
		writeError(w, http.StatusNotFound, "Complaint not found")
		return
	}

	// Decode over the fetched state so absent fields keep their values,
	// then restore the fields this endpoint must not touch.
	preserved := *complaint
	if err := json.NewDecoder(r.Body).Decode(complaint); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	complaint.ID = preserved.ID
	complaint.TicketID = preserved.TicketID
	complaint.Description = preserved.Description
	complaint.Timestamp = preserved.Timestamp
	complaint.Upvotes = preserved.Upvotes
	complaint.Downvotes = preserved.Downvotes
	complaint.ValidationStatus = preserved.ValidationStatus

	if err := h.store.UpdateComplaint(r.Context(), complaint); err != nil {
		log.Error().Err(err).Msg("Failed to update complaint")
		writeError(w, http.StatusInternalServerError, "Failed to update complaint")
		return
	}

	writeJSON(w, http.StatusOK, complaint)
}

// DeleteComplaint removes a complaint.
func (h *Handler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	complaint, err := h.store.GetComplaint(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get complaint")
		writeError(w, http.StatusInternalServerError, "Failed to delete complaint")
		return
	}
	if complaint == nil {
		writeError(w, http.StatusNotFound, "Complaint not found")
		return
	}

	if err := h.store.DeleteComplaint(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("Failed to delete complaint")
		writeError(w, http.StatusInternalServerError, "Failed to delete complaint")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Complaint deleted"})
}

// Vote registers an up or down vote and returns the updated complaint.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	complaint, err := h.engine.RegisterVote(r.Context(), id, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidVoteType):
			writeError(w, http.StatusBadRequest, "Invalid vote type")
		case errors.Is(err, validation.ErrComplaintNotFound):
			writeError(w, http.StatusNotFound, "Complaint not found")
		default:
			log.Error().Err(err).Msg("Failed to register vote")
			writeError(w, http.StatusInternalServerError, "Failed to register vote")
		}
		return
	}

	writeJSON(w, http.StatusOK, complaint)
}

// Insights returns the validation report for a complaint.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	insights, err := h.engine.Insights(r.Context(), id)
	if err != nil {
		if errors.Is(err, validation.ErrComplaintNotFound) {
			writeError(w, http.StatusNotFound, "Complaint not found")
			return
		}
		log.Error().Err(err).Msg("Failed to compute insights")
		writeError(w, http.StatusInternalServerError, "Failed to compute insights")
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

// complaintID parses the id URL parameter, writing a 400 on failure.
func complaintID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid complaint ID")
		return 0, false
	}
	return id, true
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
