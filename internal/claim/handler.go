package claim

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quickclaim/internal/transport/http/shared"
	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/requestcontext"
)

// Handler exposes the user-facing claim surface. The admin resolution
// surface lives in the admin package.
type Handler struct {
	claims *Service
	logger *slog.Logger
}

func NewHandler(claims *Service, logger *slog.Logger) *Handler {
	return &Handler{claims: claims, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/claims", h.handleCreate)
	r.Get("/claims", h.handleList)
	r.Get("/claims/{id}", h.handleGet)
	r.Post("/claims/{id}/submit", h.handleSubmit)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	c, err := h.claims.Create(ctx, requestcontext.UserID(ctx), req.Type, req.Description)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := h.claims.ListByOwner(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, claims)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := parseClaimID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	c, err := h.claims.Get(ctx, claimID, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := parseClaimID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	c, err := h.claims.Submit(ctx, claimID, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, c)
}

// parseClaimID reads the {id} route parameter. A malformed UUID maps to
// not_accessible rather than validation so the response is indistinguishable
// from a claim that doesn't exist.
func parseClaimID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeNotAccessible, "claim not found")
	}
	return id, nil
}
