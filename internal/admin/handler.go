// Package admin is the review gateway: the token-guarded surface
// administrators use to inspect and resolve claims and to audit the
// notification delivery log.
package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quickclaim/internal/claim"
	"quickclaim/internal/notification"
	"quickclaim/internal/transport/http/shared"
	dErrors "quickclaim/pkg/domainerrors"
)

type Handler struct {
	claims        *claim.Service
	notifications *notification.Service
	logger        *slog.Logger
}

func NewHandler(claims *claim.Service, notifications *notification.Service, logger *slog.Logger) *Handler {
	return &Handler{claims: claims, notifications: notifications, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/claims", h.handleListClaims)
	r.Patch("/admin/claims/{id}/status", h.handleUpdateStatus)
	r.Get("/admin/delivery-log", h.handleDeliveryLog)
}

func (h *Handler) handleListClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter *claim.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := claim.ParseStatus(raw)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "unknown status filter"))
			return
		}
		filter = &status
	}

	claims, err := h.claims.ListAll(ctx, filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, claims)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotAccessible, "claim not found"))
		return
	}

	var req struct {
		Status string   `json:"status"`
		Amount *float64 `json:"amount"`
		Notes  *string  `json:"notes"`
	}
	if err := shared.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	next, err := claim.ParseStatus(req.Status)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "unknown claim status"))
		return
	}

	c, err := h.claims.AdminUpdateStatus(ctx, claimID, next, req.Amount, req.Notes)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeliveryLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	entries, err := h.notifications.RecentDeliveries(ctx, limit)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, entries)
}
