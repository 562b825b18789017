package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"regdesk/internal/identity/models"
	"regdesk/internal/identity/store"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
)

const signingKey = "test-signing-key"

func newService(t *testing.T, sink *audit.Memory) *Service {
	t.Helper()

	adminRole := &models.Role{
		ID:   1,
		Name: "Admin",
		Permissions: []models.Permission{
			{ID: 1, Name: "registrations.manage"},
		},
	}
	st := store.NewInMemory(adminRole)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	roleID := int64(1)
	_, err = st.InsertExecutive(context.Background(), &models.Executive{
		Username:     "asha",
		Email:        "asha@regdesk.test",
		PasswordHash: string(hash),
		EntityType:   "Executive",
		RoleID:       &roleID,
	})
	require.NoError(t, err)

	opts := []Option{}
	if sink != nil {
		opts = append(opts, WithAudit(sink))
	}
	return New(st, signingKey, time.Hour, slog.Default(), opts...)
}

func TestLogin_Succeeds(t *testing.T) {
	sink := audit.NewMemory()
	svc := newService(t, sink)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "asha",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha", resp.Entity.Username)
	assert.Equal(t, "Admin", resp.Entity.Role.Name)
	require.Len(t, resp.Entity.Role.Permissions, 1)
	assert.Equal(t, "registrations.manage", resp.Entity.Role.Permissions[0].Name)

	assert.Len(t, sink.ByAction(audit.ActionLoginSucceeded), 1)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	sink := audit.NewMemory()
	svc := newService(t, sink)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Username: "asha"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Username: "nobody", Password: "hunter2"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Username: "asha", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	assert.Len(t, sink.ByAction(audit.ActionLoginFailed), 2)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	svc := newService(t, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "asha",
		Password: "hunter2",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.StaffID)
	assert.Equal(t, "asha@regdesk.test", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
}

func TestValidateToken_RejectsGarbageAndWrongKey(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	other := newService(t, nil)
	other.signingKey = []byte("a-different-key")
	resp, err := other.Login(context.Background(), models.LoginRequest{
		Username: "asha",
		Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestLogin_AccountWithoutRole(t *testing.T) {
	st := store.NewInMemory()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = st.InsertExecutive(context.Background(), &models.Executive{
		Username:     "intern",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)

	svc := New(st, signingKey, time.Hour, slog.Default())
	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "intern",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "No Role", resp.Entity.Role.Name)
	assert.Empty(t, resp.Entity.Role.Permissions)
}
