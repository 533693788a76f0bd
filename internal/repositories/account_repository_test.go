package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/testutil"
	"ecoquest/pkg/utils"
)

func TestAccountRepository_ListUsersExcludesStaff(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	testutil.SeedAccount(t, db, db_models.Account{ID: "u1", Username: "budi", CreatedAt: testutil.Ptr(base)})
	testutil.SeedAccount(t, db, db_models.Account{ID: "u2", FullName: "Siti Aminah", CreatedAt: testutil.Ptr(base.Add(time.Hour))})
	testutil.SeedAccount(t, db, db_models.Account{ID: "a1", Role: "admin", CreatedAt: testutil.Ptr(base)})
	testutil.SeedAccount(t, db, db_models.Account{ID: "s1", Role: "super_admin", CreatedAt: testutil.Ptr(base)})

	users, err := repo.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID, "newest first")

	users, err = repo.ListUsers(ctx, "AMINAH")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].ID)

	users, err = repo.ListUsers(ctx, "u1@eco")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)

	staff, err := repo.ListByRoles(ctx, domain.AdminRoles)
	require.NoError(t, err)
	assert.Len(t, staff, 2)
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	testutil.SeedAccount(t, db, db_models.Account{ID: "a1", Email: "admin@ecoquest.id", Role: "admin"})

	found, err := repo.FindByEmail(ctx, " Admin@EcoQuest.id ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a1", found.ID)

	missing, err := repo.FindByEmail(ctx, "nobody@ecoquest.id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_InsertDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &db_models.Account{Email: "dup@ecoquest.id", Role: "admin", Status: "active"}))
	err := repo.Insert(ctx, &db_models.Account{Email: "dup@ecoquest.id", Role: "admin", Status: "active"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestAccountRepository_UpdateSanctionAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	testutil.SeedAccount(t, db, db_models.Account{ID: "u1", Points: 80})

	require.NoError(t, repo.UpdateSanction(ctx, "u1", domain.StatusBanned, 30))
	got, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), got.Points)
	assert.Equal(t, "banned", got.Status)

	assert.ErrorIs(t, repo.UpdateSanction(ctx, "ghost", domain.StatusActive, 0), utils.ErrAccountNotFound)

	require.NoError(t, repo.Delete(ctx, "u1"))
	assert.ErrorIs(t, repo.Delete(ctx, "u1"), utils.ErrAccountNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	accounts := NewAccountRepository(db)
	events := NewActivityRepository(db)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	testutil.SeedAccount(t, db, db_models.Account{ID: "u1", Points: 80})

	boom := errors.New("boom")
	err := tm.InTransaction(ctx, func(tx TxContext) error {
		require.NoError(t, accounts.WithTx(tx).UpdateSanction(ctx, "u1", domain.StatusActive, 30))
		require.NoError(t, events.WithTx(tx).Insert(ctx, &db_models.ActivityEvent{AccountID: "u1", Type: "penalty", Points: -50}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := accounts.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(80), got.Points)

	history, err := events.ListByAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := testutil.NewDB(t)
	accounts := NewAccountRepository(db)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	testutil.SeedAccount(t, db, db_models.Account{ID: "u1", Points: 80})

	err := tm.InTransaction(ctx, func(tx TxContext) error {
		locked, err := accounts.WithTx(tx).FindByIDForUpdate(ctx, "u1")
		if err != nil {
			return err
		}
		return accounts.WithTx(tx).UpdateSanction(ctx, locked.ID, domain.StatusActive, locked.Points-50)
	})
	require.NoError(t, err)

	got, err := accounts.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), got.Points)
}
