package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/testutil"
)

func TestActivityRepository_ListRecentByType(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	testutil.SeedAccount(t, db, db_models.Account{ID: "u1"})
	testutil.SeedAccount(t, db, db_models.Account{ID: "u2"})
	for i := 0; i < 5; i++ {
		owner := "u1"
		if i%2 == 1 {
			owner = "u2"
		}
		testutil.SeedEvent(t, db, db_models.ActivityEvent{
			AccountID: owner, Type: "earn", Points: int64(10 + i), Title: "Botol plastik",
			CreatedAt: testutil.Ptr(base.Add(time.Duration(i) * time.Minute)),
		})
	}
	testutil.SeedEvent(t, db, db_models.ActivityEvent{AccountID: "u1", Type: "redeem", Points: -20, CreatedAt: testutil.Ptr(base.Add(time.Hour))})

	events, err := repo.ListRecentByType(ctx, domain.EventEarn, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(14), events[0].Points)
	assert.Equal(t, "u1", events[0].AccountID)
	assert.Equal(t, int64(13), events[1].Points)
	assert.Equal(t, "u2", events[1].AccountID)
	for _, e := range events {
		assert.Equal(t, "earn", e.Type)
	}
}

func TestActivityRepository_DeleteByAccount(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	testutil.SeedAccount(t, db, db_models.Account{ID: "u1"})
	testutil.SeedAccount(t, db, db_models.Account{ID: "u2"})
	testutil.SeedEvent(t, db, db_models.ActivityEvent{AccountID: "u1", Type: "earn", Points: 5})
	testutil.SeedEvent(t, db, db_models.ActivityEvent{AccountID: "u1", Type: "earn", Points: 5})
	testutil.SeedEvent(t, db, db_models.ActivityEvent{AccountID: "u2", Type: "earn", Points: 5})

	n, err := repo.DeleteByAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := repo.ListByAccount(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}
