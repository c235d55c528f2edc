package repository

import (
	"context"
	"testing"

	authdomain "shop-backend/internal/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Email: "a@test.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.Len(t, user.ID, 24)
	assert.NotNil(t, user.Tokens)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@test.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "a@test.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := repo.FindByID(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, &authdomain.User{Email: "a@test.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Email: "a@test.com"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	found.Email = "mutated@test.com"
	found.Tokens = append(found.Tokens, "forged")

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@test.com", again.Email)
	assert.Empty(t, again.Tokens)
}

func TestMemoryUserRepository_Tokens(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Email: "a@test.com"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.AddToken(ctx, user.ID, "t1"))
	require.NoError(t, repo.AddToken(ctx, user.ID, "t2"))

	for _, tok := range []string{"t1", "t2"} {
		found, err := repo.FindByIDAndToken(ctx, user.ID, tok)
		require.NoError(t, err)
		assert.NotNil(t, found, tok)
	}

	unknown, err := repo.FindByIDAndToken(ctx, user.ID, "t3")
	require.NoError(t, err)
	assert.Nil(t, unknown)

	require.NoError(t, repo.ClearTokens(ctx, user.ID))

	cleared, err := repo.FindByIDAndToken(ctx, user.ID, "t1")
	require.NoError(t, err)
	assert.Nil(t, cleared)

	assert.ErrorIs(t, repo.AddToken(ctx, "missing", "t"), ErrNotFound)
	assert.ErrorIs(t, repo.ClearTokens(ctx, "missing"), ErrNotFound)
}

func TestMemoryUserRepository_UpdateKeepsTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Email: "a@test.com", Password: "old"}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.AddToken(ctx, user.ID, "t1"))

	other := &authdomain.User{Email: "b@test.com"}
	require.NoError(t, repo.Create(ctx, other))

	email, password := "c@test.com", "new"
	updated, err := repo.Update(ctx, user.ID, UserUpdate{Email: &email, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "c@test.com", updated.Email)
	assert.Equal(t, []string{"t1"}, updated.Tokens)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "c@test.com", found.Email)
	assert.Equal(t, "new", found.Password)
	assert.Equal(t, []string{"t1"}, found.Tokens)

	taken := "b@test.com"
	_, err = repo.Update(ctx, user.ID, UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = repo.Update(ctx, "missing", UserUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepository_UpdateWritesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Email: "a@test.com", Password: "old"}
	require.NoError(t, repo.Create(ctx, user))

	password := "new"
	_, err := repo.Update(ctx, user.ID, UserUpdate{Password: &password})
	require.NoError(t, err)

	email := "c@test.com"
	updated, err := repo.Update(ctx, user.ID, UserUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "c@test.com", updated.Email)
	assert.Equal(t, "new", updated.Password)
	assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))
}

func TestMemoryUserRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	for _, email := range []string{"a@test.com", "b@test.com"} {
		require.NoError(t, repo.Create(ctx, &authdomain.User{Email: email}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, repo.Delete(ctx, users[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, users[0].ID), ErrNotFound)

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
