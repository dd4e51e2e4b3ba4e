package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quickclaim/internal/transport/http/shared"
	"quickclaim/pkg/requestcontext"
)

// Handler exposes the authenticated profile surface. All routes assume the
// auth middleware has placed the caller's user ID in the context.
type Handler struct {
	users  *Service
	logger *slog.Logger
}

func NewHandler(users *Service, logger *slog.Logger) *Handler {
	return &Handler{users: users, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/me", h.handleGet)
	r.Put("/me/profile", h.handleUpdateProfile)
	r.Put("/me/preferences", h.handleUpdatePreferences)
	r.Post("/me/id-document", h.handleAttachIDDocument)
	r.Post("/me/onboarding/complete", h.handleCompleteOnboarding)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.users.Get(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Name     string `json:"name"`
		Region   string `json:"region"`
		WorkType string `json:"work_type"`
	}
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.users.UpdateProfile(ctx, requestcontext.UserID(ctx), req.Name, req.Region, req.WorkType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Preferences
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.users.UpdateEmailPreferences(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleAttachIDDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		StorageRef string `json:"storage_ref"`
	}
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.users.AttachIDDocument(ctx, requestcontext.UserID(ctx), req.StorageRef)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.users.CompleteOnboarding(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}
