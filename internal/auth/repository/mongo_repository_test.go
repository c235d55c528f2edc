package repository

import (
	"context"
	"testing"

	authdomain "shop-backend/internal/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const usersNS = "shop.users"

func userDoc(id primitive.ObjectID, email string, tokens ...string) bson.D {
	toks := bson.A{}
	for _, t := range tokens {
		toks = append(toks, bson.D{{Key: "token", Value: t}})
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: email},
		{Key: "password", Value: "$2a$10$hash"},
		{Key: "tokens", Value: toks},
	}
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &authdomain.User{Email: "a@test.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))

		_, err := primitive.ObjectIDFromHex(user.ID)
		assert.NoError(t, err)
		assert.NotNil(t, user.Tokens)
		assert.False(t, user.CreatedAt.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: shop.users index: email_unique",
		}))

		err := repo.Create(ctx, &authdomain.User{Email: "a@test.com"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	mt.Run("find by id and token decodes tokens", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			userDoc(id, "a@test.com", "t1", "t2")))

		user, err := repo.FindByIDAndToken(ctx, id.Hex(), "t2")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id.Hex(), user.ID)
		assert.Equal(t, []string{"t1", "t2"}, user.Tokens)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		user, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)

		user, err := repo.FindByID(ctx, "63326decb3abcde1006481234")
		require.NoError(t, err)
		assert.Nil(t, user)

		assert.ErrorIs(t, repo.Delete(ctx, "nope"), ErrNotFound)
		assert.ErrorIs(t, repo.AddToken(ctx, "nope", "t"), ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "a@test.com"),
			userDoc(primitive.NewObjectID(), "b@test.com", "t1"),
		))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "a@test.com", users[0].Email)
		assert.Equal(t, []string{"t1"}, users[1].Tokens)
	})

	mt.Run("add token", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(t, repo.AddToken(ctx, primitive.NewObjectID().Hex(), "t1"))
	})

	mt.Run("clear tokens on missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.ClearTokens(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("update returns the stored document", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: userDoc(id, "c@test.com", "t1")},
		))

		email := "c@test.com"
		user, err := repo.Update(ctx, id.Hex(), UserUpdate{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, "c@test.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.Password)
		assert.Equal(t, []string{"t1"}, user.Tokens)
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), UserUpdate{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("update duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		email := "b@test.com"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), UserUpdate{Email: &email})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})
}
