package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/domain"
	"ecoquest/internal/identity"
	"ecoquest/internal/repositories"
	"ecoquest/internal/testutil"
	"ecoquest/pkg/utils"
)

func TestCreateIdentity_SuperAdmin(t *testing.T) {
	db := testutil.NewDB(t)

	id, err := createIdentity(context.Background(), db, identity.NewIdentity{
		FullName: "Rina",
		Email:    "rina@ecoquest.id",
		Password: "rahasia1",
		Role:     domain.RoleSuperAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := repositories.NewAccountRepository(db).FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, string(domain.RoleSuperAdmin), stored.Role)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "rahasia1"))
}

func TestCreateSuperAdminCmd_RequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"create-super-admin", "--name", "Rina"})
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})

	assert.Error(t, cmd.Execute())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
