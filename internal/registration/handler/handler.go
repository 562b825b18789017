package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// Service defines the registration operations the handler exposes.
type Service interface {
	Create(ctx context.Context, req models.CreateRequest) (*models.Pair, error)
	Update(ctx context.Context, id int64, req models.UpdateRequest) (*models.Pair, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, req models.ApproveRequest) (*models.Pair, error)
	Assign(ctx context.Context, id int64, req models.AssignRequest) (*models.Registration, error)
	Get(ctx context.Context, id int64) (*models.Detail, error)
	List(ctx context.Context) ([]*models.Registration, error)
	CreateTransaction(ctx context.Context, req models.NewTransactionRequest) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
}

// Handler wires registration endpoints to the coordinator service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registration and transaction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/registrations", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Put("/", h.HandleUpdate)
			r.Delete("/", h.HandleDelete)
			r.Put("/approve", h.HandleApprove)
			r.Put("/assign", h.HandleAssign)
		})
	})
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.HandleListTransactions)
		r.Post("/", h.HandleCreateTransaction)
	})
}

// HandleCreate handles POST /registrations requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.Decode[models.CreateRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.service.Create(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration creation failed",
			"request_id", requestcontext.RequestID(ctx),
			"prospectus_id", req.ProspectusID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration created",
		"request_id", requestcontext.RequestID(ctx),
		"registration_id", pair.Registration.ID,
		"transaction_id", pair.Transaction.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteData(w, http.StatusCreated, pair)
}

// HandleList handles GET /registrations requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	regs, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, regs)
}

// HandleGet handles GET /registrations/{id} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, detail)
}

// HandleUpdate handles PUT /registrations/{id} requests.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[models.UpdateRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.service.Update(ctx, id, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration update failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, pair)
}

// HandleDelete handles DELETE /registrations/{id} requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "registration deletion failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "registration deleted")
}

// HandleApprove handles PUT /registrations/{id}/approve requests.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[models.ApproveRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.service.Approve(ctx, id, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration approval failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, pair)
}

// HandleAssign handles PUT /registrations/{id}/assign requests.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[models.AssignRequest](w, r)
	if !ok {
		return
	}

	reg, err := h.service.Assign(ctx, id, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration assignment failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, reg)
}

// HandleCreateTransaction handles POST /transactions requests.
func (h *Handler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[models.NewTransactionRequest](w, r)
	if !ok {
		return
	}
	txn, err := h.service.CreateTransaction(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusCreated, txn)
}

// HandleListTransactions handles GET /transactions requests.
func (h *Handler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.service.ListTransactions(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, txns)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid id"))
		return 0, false
	}
	return id, true
}
