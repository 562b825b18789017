package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regdesk/internal/bank/models"
	"regdesk/internal/bank/store"
	regmodels "regdesk/internal/registration/models"
	regstore "regdesk/internal/registration/store"
	dErrors "regdesk/pkg/domain-errors"
)

func newService(t *testing.T) (*Service, *regstore.InMemoryRegistrations) {
	t.Helper()
	registrations := regstore.NewInMemoryRegistrations()
	return New(store.NewInMemory(), registrations, slog.Default()), registrations
}

func validRequest() models.CreateRequest {
	return models.CreateRequest{
		AccountName:       "Operations",
		AccountHolderName: "Regdesk Ops",
		AccountNumber:     "000111222",
		IFSCCode:          "FNBK0001234",
		Bank:              "First National",
		AccountType:       "Current",
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateRequest{AccountName: "Operations"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	req := validRequest()
	req.AccountType = "Checking"
	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCreateAndGet(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	account, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.NotZero(t, account.ID)

	got, err := svc.Get(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "First National", got.Bank)

	_, err = svc.Get(ctx, 99)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestDeleteBlockedWhileReferenced(t *testing.T) {
	svc, registrations := newService(t)
	ctx := context.Background()

	account, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = registrations.Insert(ctx, &regmodels.Registration{
		ProspectusID: 42,
		BankID:       &account.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, account.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	// Still there.
	_, err = svc.Get(ctx, account.ID)
	assert.NoError(t, err)
}

func TestDeleteUnreferencedAccount(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	account, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, account.ID))
	_, err = svc.Get(ctx, account.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
