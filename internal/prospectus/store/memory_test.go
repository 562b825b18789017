package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regdesk/internal/prospectus/models"
	"regdesk/pkg/platform/sentinel"
)

func seed(t *testing.T, s *InMemory) *models.Prospectus {
	t.Helper()
	p, err := s.Insert(context.Background(), &models.Prospectus{
		ClientName: "Acme Ltd",
		Email:      "ops@acme.test",
		RegID:      "REG-2026-001",
		Department: "Research",
	})
	require.NoError(t, err)
	return p
}

func TestInMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	p := seed(t, s)

	phone := "5550100"
	updated, err := s.Update(ctx, p.ID, models.Patch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "5550100", updated.Phone)
	assert.Equal(t, "Acme Ltd", updated.ClientName)

	require.NoError(t, s.Delete(ctx, p.ID))
	_, err = s.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemorySetRegistered(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	p := seed(t, s)
	require.False(t, p.IsRegistered)

	require.NoError(t, s.SetRegistered(ctx, p.ID, true))
	got, err := s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRegistered)

	require.NoError(t, s.SetRegistered(ctx, p.ID, false))
	got, err = s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRegistered)

	assert.ErrorIs(t, s.SetRegistered(ctx, 99, true), sentinel.ErrNotFound)
}

func TestInMemoryFindSummary(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	p := seed(t, s)
	require.NoError(t, s.SetRegistered(ctx, p.ID, true))

	summary, err := s.FindSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", summary.ClientName)
	assert.Equal(t, "REG-2026-001", summary.RegID)
	assert.True(t, summary.IsRegistered)

	_, err = s.FindSummary(ctx, 99)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
