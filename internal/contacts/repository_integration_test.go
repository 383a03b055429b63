//go:build integration

package contacts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioreel/website/internal/models"
	"github.com/studioreel/website/pkg/database/databasetest"
)

func TestRepository(t *testing.T) {
	repo := NewRepository(databasetest.NewPool(t))
	ctx := context.Background()

	site := "studio.example.com"
	first := &models.Lead{Name: "A", Email: "a@x.io", Phone: "9876543210", Subject: models.SubjectOther, Website: &site, Message: "hi"}
	second := &models.Lead{Name: "B", Email: "b@x.io", Phone: "6876543210", Subject: models.SubjectBrandCampaign, Message: "hey"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].CreatedAt.Before(list[1].CreatedAt))
	for _, l := range list {
		if l.ID == first.ID {
			require.NotNil(t, l.Website)
			assert.Equal(t, site, *l.Website)
			assert.Nil(t, l.Budget)
		}
	}

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), models.ErrNotFound)
}
