package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/repository"
	"ponyexpress/backend/internal/testutil"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "sarah", Email: "sarah@example.com", HashedPassword: "x"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sarah", got.Username)
	assert.Equal(t, "sarah@example.com", got.Email)

	byName, err := repo.FindByUsername(ctx, "sarah")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), 42)
	require.Error(t, err)

	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.EntityName)
	assert.Equal(t, uint(42), notFound.EntityID)
}

func TestUserRepository_FindAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	testutil.CreateUser(t, db, "terminator", "t800@example.com")

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "sarah", "sarah@example.com")

	user.Email = "new@example.com"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "sarah", got.Username)
}

func TestUserRepository_Taken(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	terminator := testutil.CreateUser(t, db, "terminator", "t800@example.com")

	tcases := []struct {
		name      string
		username  string
		excludeID uint
		want      bool
	}{
		{name: "taken by another user", username: "sarah", excludeID: terminator.ID, want: true},
		{name: "own name excluded", username: "sarah", excludeID: sarah.ID, want: false},
		{name: "free name", username: "john", excludeID: 0, want: false},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			taken, err := repo.UsernameTaken(ctx, tc.username, tc.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, taken)
		})
	}

	taken, err := repo.EmailTaken(ctx, "t800@example.com", sarah.ID)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "t800@example.com", terminator.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}
