package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"regdesk/internal/identity/models"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// Service defines the identity operations the handler exposes.
type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the login endpoint. It lives outside the authenticated
// /api subtree.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

// HandleLogin handles POST /auth/login requests.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[models.LoginRequest](w, r)
	if !ok {
		return
	}

	resp, err := h.service.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login rejected",
			"request_id", requestcontext.RequestID(ctx),
			"username", req.Username,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login succeeded",
		"request_id", requestcontext.RequestID(ctx),
		"username", req.Username,
	)
	httputil.WriteData(w, http.StatusOK, resp)
}
