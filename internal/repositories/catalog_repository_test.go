package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/models/db_models"
	"ecoquest/internal/testutil"
	"ecoquest/pkg/utils"
)

func TestRewardRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRewardRepository(db)
	ctx := context.Background()

	reward := &db_models.Reward{Title: "Tumbler", Points: 500, Stock: 3, ImageURL: db_models.DefaultRewardImageURL}
	require.NoError(t, repo.Insert(ctx, reward))
	require.NotEmpty(t, reward.ID)

	reward.Stock = 0
	reward.Title = "Tumbler Bambu"
	require.NoError(t, repo.Update(ctx, reward))

	got, err := repo.FindByID(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tumbler Bambu", got.Title)
	assert.Equal(t, int64(0), got.Stock, "zero stock is written")
	assert.False(t, got.Available())

	assert.ErrorIs(t, repo.Update(ctx, &db_models.Reward{BaseModel: db_models.BaseModel{ID: "ghost"}}), utils.ErrRewardNotFound)

	require.NoError(t, repo.Delete(ctx, reward.ID))
	_, err = repo.FindByID(ctx, reward.ID)
	assert.ErrorIs(t, err, utils.ErrRewardNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, reward.ID), utils.ErrRewardNotFound)
}

func TestTrashBinRepository_InsertListDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTrashBinRepository(db)
	ctx := context.Background()

	for _, code := range []string{"BIN-1", "BIN-1"} {
		require.NoError(t, repo.Insert(ctx, &db_models.TrashBin{
			Name:      "Taman Kota",
			BinCode:   code,
			Latitude:  decimal.RequireFromString("-6.2000000"),
			Longitude: decimal.RequireFromString("106.8166667"),
		}))
		time.Sleep(time.Millisecond)
	}

	bins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bins, 2, "duplicate codes are accepted")
	assert.True(t, bins[0].Latitude.Equal(decimal.RequireFromString("-6.2")))

	require.NoError(t, repo.Delete(ctx, bins[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, bins[0].ID), utils.ErrTrashBinNotFound)
}
