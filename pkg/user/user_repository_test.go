package user

import (
	"context"
	"testing"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserWithProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email:    "rafa@example.com",
		Password: "hash",
		Metadata: map[string]string{"full_name": "Rafa Lima"},
	}
	require.NoError(t, repo.CreateUserWithProfile(ctx, user, &entities.Profile{FullName: "Rafa Lima"}))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.GetUserByEmail(ctx, "rafa@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Rafa Lima", found.Metadata["full_name"])
	assert.Nil(t, found.EmailConfirmedAt)

	var stored string
	require.NoError(t, db.Raw("SELECT metadata FROM users WHERE id = ?", user.ID).Scan(&stored).Error)
	assert.JSONEq(t, `{"full_name":"Rafa Lima"}`, stored)

	profile, err := repo.GetProfile(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Rafa Lima", profile.FullName)

	dup := &entities.User{Email: "rafa@example.com", Password: "hash"}
	err = repo.CreateUserWithProfile(ctx, dup, &entities.Profile{})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLookupsReportMissingUser(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = repo.GetUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, repo.ConfirmEmail(ctx, uuid.NewString(), time.Now()), domain.ErrUserNotFound)
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "lu@example.com")
	id := user.ID.String()

	require.NoError(t, repo.UpdateProfile(ctx, id, map[string]any{"full_name": "Lu Souza", "phone": "11999990000"}))
	require.NoError(t, repo.UpdateProfile(ctx, id, map[string]any{"cpf": "123.456.789-00"}))

	profile, err := repo.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lu Souza", profile.FullName)
	assert.Equal(t, "11999990000", profile.Phone)
	assert.Equal(t, "123.456.789-00", profile.CPF)

	assert.ErrorIs(t, repo.UpdateProfile(ctx, id, nil), domain.ErrEmptyProfileUpdate)
	assert.ErrorIs(t, repo.UpdateProfile(ctx, uuid.NewString(), map[string]any{"phone": "1"}), domain.ErrUserNotFound)
}

func TestConfirmEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "jo@example.com")

	at := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.ConfirmEmail(ctx, user.ID.String(), at))

	found, err := repo.GetUserByID(ctx, user.ID.String())
	require.NoError(t, err)
	require.NotNil(t, found.EmailConfirmedAt)
	assert.True(t, at.Equal(*found.EmailConfirmedAt))
}
