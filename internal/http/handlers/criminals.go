package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/http/respond"
	"github.com/crimetrack/crimetrack-be/internal/models/dto"
	"github.com/crimetrack/crimetrack-be/internal/storage"
	"github.com/google/uuid"
)

// CriminalHandler owns the case-record CRUD endpoints. Every route is
// expected to sit behind the auth middleware.
type CriminalHandler struct {
	store storage.CriminalStore
}

// NewCriminalHandler constructs the handler.
func NewCriminalHandler(store storage.CriminalStore) *CriminalHandler {
	return &CriminalHandler{store: store}
}

// Routes returns the handler's routes on a fresh mux so the caller can wrap
// them all in middleware at once.
func (h *CriminalHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/criminals", h.handleList)
	mux.HandleFunc("GET /api/criminals/{id}", h.handleGet)
	mux.HandleFunc("POST /api/criminals", h.handleCreate)
	mux.HandleFunc("PUT /api/criminals/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/criminals/{id}", h.handleDelete)
	return mux
}

func (h *CriminalHandler) handleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	records, err := h.store.ListCriminals(r.Context(), search)
	if err != nil {
		log.Printf("list criminals error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch criminal records")
		return
	}
	respond.Data(w, http.StatusOK, records)
}

func (h *CriminalHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetCriminal(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Criminal record not found")
			return
		}
		log.Printf("get criminal error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch criminal record")
		return
	}
	respond.Data(w, http.StatusOK, record)
}

func (h *CriminalHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCriminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	record, err := req.ToCriminal(time.Now())
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	record.ID = uuid.NewString()

	created, err := h.store.CreateCriminal(r.Context(), record)
	if err != nil {
		log.Printf("create criminal error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create criminal record")
		return
	}
	respond.Data(w, http.StatusCreated, created)
}

func (h *CriminalHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCriminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	// Read-modify-write; concurrent updates to the same id are last write
	// wins, matching the store's single-document update semantics.
	record, err := h.store.GetCriminal(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Criminal record not found")
			return
		}
		log.Printf("get criminal for update error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch criminal record")
		return
	}
	if err := req.Apply(&record); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateCriminal(r.Context(), record)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Criminal record not found")
			return
		}
		log.Printf("update criminal error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to update criminal record")
		return
	}
	respond.Data(w, http.StatusOK, updated)
}

func (h *CriminalHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCriminal(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Criminal record not found")
			return
		}
		log.Printf("delete criminal error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete criminal record")
		return
	}
	respond.Message(w, http.StatusOK, "Criminal record deleted successfully")
}
