package document

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quickclaim/internal/transport/http/shared"
	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/requestcontext"
)

type Handler struct {
	docs   *Service
	logger *slog.Logger
}

func NewHandler(docs *Service, logger *slog.Logger) *Handler {
	return &Handler{docs: docs, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/claims/{id}/documents", h.handleAttach)
	r.Get("/claims/{id}/documents", h.handleList)
	r.Post("/uploads", h.handleGenerateUploadURL)
}

func (h *Handler) handleAttach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := parseClaimID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req struct {
		Name       string `json:"name"`
		StorageRef string `json:"storage_ref"`
	}
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	doc, err := h.docs.Attach(ctx, claimID, requestcontext.UserID(ctx), req.Name, req.StorageRef)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := parseClaimID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	docs, err := h.docs.List(ctx, claimID, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) handleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	target, err := h.docs.GenerateUploadURL(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, target)
}

func parseClaimID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeNotAccessible, "claim not found")
	}
	return id, nil
}
