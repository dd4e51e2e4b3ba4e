package benefit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quickclaim/internal/transport/http/shared"
	"quickclaim/pkg/requestcontext"
)

type Handler struct {
	benefits *Service
	logger   *slog.Logger
}

func NewHandler(benefits *Service, logger *slog.Logger) *Handler {
	return &Handler{benefits: benefits, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/benefits", h.handleListAll)
	r.Get("/benefits/eligible", h.handleEligible)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	programs, err := h.benefits.ListAll(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, programs)
}

func (h *Handler) handleEligible(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	programs, err := h.benefits.EligibleFor(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, programs)
}
