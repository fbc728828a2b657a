package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-eventing/internal/content/application"
	"github.com/mateusmacedo/go-eventing/internal/content/domain"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
)

type ContentHTTPHandler struct {
	service *application.ContentService
}

func NewContentHTTPHandler(service *application.ContentService) *ContentHTTPHandler {
	return &ContentHTTPHandler{
		service: service,
	}
}

func (h *ContentHTTPHandler) HandleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var data application.SaveDocumentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	document, err := h.service.Save(ctx, data)
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(document); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) HandlePublishDocument(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Publish)
}

func (h *ContentHTTPHandler) HandleUnpublishDocument(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Unpublish)
}

func (h *ContentHTTPHandler) HandleTrashDocument(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Trash)
}

func (h *ContentHTTPHandler) handleTransition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (domain.Document, error)) {
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	document, err := op(ctx, documentID)
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(document); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) HandleMoveDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	var data application.MoveDocumentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	document, err := h.service.Move(ctx, documentID, data)
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(document); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) HandleRefreshCache(w http.ResponseWriter, r *http.Request) {
	var data application.RefreshCacheData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.RefreshCache(ctx, data); err != nil {
		if errors.Is(err, pkgDomain.ErrEmptyScope) {
			handleError(w, err.Error(), http.StatusBadRequest)
			return
		}
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"message": "Cache refresh dispatched"}); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	document, err := h.service.Get(ctx, documentID)
	if err != nil {
		handleError(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(document); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) HandleListFolder(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	documents, err := h.service.ListFolder(ctx, folder)
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(documents); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ContentHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/documents", h.HandleSaveDocument)
	router.Get("/documents/{documentID}", h.HandleGetDocument)
	router.Post("/documents/{documentID}/publish", h.HandlePublishDocument)
	router.Post("/documents/{documentID}/unpublish", h.HandleUnpublishDocument)
	router.Post("/documents/{documentID}/trash", h.HandleTrashDocument)
	router.Post("/documents/{documentID}/move", h.HandleMoveDocument)
	router.Post("/cache/refresh", h.HandleRefreshCache)
	router.Get("/folders/{folder}/documents", h.HandleListFolder)
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
