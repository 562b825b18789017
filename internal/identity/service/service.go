// Package service implements staff login and bearer-token validation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"

	"regdesk/internal/identity/models"
	"regdesk/internal/identity/store"
	"regdesk/internal/platform/metrics"
	"regdesk/internal/platform/middleware"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
	"regdesk/pkg/requestcontext"
)

type Service struct {
	store      store.Store
	signingKey []byte
	ttl        time.Duration
	logger     *slog.Logger
	audit      audit.Publisher
	metrics    *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithAudit attaches an audit publisher for login events.
func WithAudit(p audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

// WithMetrics attaches the login attempt counter.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(store store.Store, signingKey string, ttl time.Duration, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:      store,
		signingKey: []byte(signingKey),
		ttl:        ttl,
		logger:     logger,
		audit:      audit.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies credentials and issues a signed token. Lookup misses and
// password mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exec, err := s.store.FindExecutiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.recordLogin(ctx, req.Username, false)
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch executive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(exec.PasswordHash), []byte(req.Password)); err != nil {
		s.recordLogin(ctx, req.Username, false)
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	role, err := s.resolveRole(ctx, exec.RoleID)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(exec, role.Name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}

	s.recordLogin(ctx, req.Username, true)
	return &models.LoginResponse{
		Token: token,
		Entity: models.Entity{
			ID:         exec.ID,
			Username:   exec.Username,
			Email:      exec.Email,
			EntityType: exec.EntityType,
			Role:       *role,
			CreatedAt:  exec.CreatedAt,
			UpdatedAt:  exec.UpdatedAt,
		},
	}, nil
}

// resolveRole expands the executive's role. Accounts without a role still
// log in, with an empty role attached.
func (s *Service) resolveRole(ctx context.Context, roleID *int64) (*models.Role, error) {
	if roleID == nil {
		return &models.Role{Name: "No Role"}, nil
	}
	role, err := s.store.FindRole(ctx, *roleID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return &models.Role{Name: "No Role"}, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch role details")
	}
	return role, nil
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) issueToken(exec *models.Executive, roleName string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: exec.Email,
		Role:  roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(exec.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// ValidateToken implements middleware.TokenValidator.
func (s *Service) ValidateToken(tokenString string) (*middleware.Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token")
	}
	return &middleware.Claims{
		StaffID: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}, nil
}

// recordLogin counts the attempt and emits an audit event carrying the
// parsed client user agent. Both are fail-open.
func (s *Service) recordLogin(ctx context.Context, username string, success bool) {
	outcome := "failure"
	action := audit.ActionLoginFailed
	if success {
		outcome = "success"
		action = audit.ActionLoginSucceeded
	}
	if s.metrics != nil {
		s.metrics.IncLogin(outcome)
	}

	detail := map[string]any{"username": username}
	if raw := requestcontext.UserAgent(ctx); raw != "" {
		ua := useragent.New(raw)
		browser, version := ua.Browser()
		detail["browser"] = browser + " " + version
		detail["os"] = ua.OS()
		detail["mobile"] = ua.Mobile()
	}
	if ip := requestcontext.ClientIP(ctx); ip != "" {
		detail["client_ip"] = ip
	}

	event := audit.Event{
		Action:    action,
		RequestID: requestcontext.RequestID(ctx),
		Subject:   "executive/" + username,
		Detail:    detail,
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
