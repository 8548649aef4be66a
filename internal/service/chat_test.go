package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/repository"
	"ponyexpress/backend/internal/service"
	"ponyexpress/backend/internal/testutil"
)

func TestChatService_UpdateChat(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))
	ctx := context.Background()

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	chat := testutil.CreateChat(t, db, "skynet", sarah)

	updated, err := svc.UpdateChat(ctx, chat.ID, "legion")
	require.NoError(t, err)
	assert.Equal(t, "legion", updated.Name)
	assert.Equal(t, "sarah", updated.Owner.Username)

	got, err := svc.GetChatByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, "legion", got.Name)
}

func TestChatService_UpdateChatNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))

	_, err := svc.UpdateChat(context.Background(), 5, "legion")
	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Chat", notFound.EntityName)
	assert.Equal(t, uint(5), notFound.EntityID)
}

func TestChatService_DeleteChat(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))
	ctx := context.Background()

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	chat := testutil.CreateChat(t, db, "skynet", sarah)

	require.NoError(t, svc.DeleteChat(ctx, chat.ID))

	_, err := svc.GetChatByID(ctx, chat.ID)
	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Chat", notFound.EntityName)
}

func TestChatService_DeleteChatNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))

	err := svc.DeleteChat(context.Background(), 5)
	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Chat", notFound.EntityName)
}

func TestChatService_CreateMessage(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))
	ctx := context.Background()

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	chat := testutil.CreateChat(t, db, "skynet", sarah)

	message, err := svc.CreateMessage(ctx, chat.ID, sarah, "no fate")
	require.NoError(t, err)
	assert.NotZero(t, message.ID)
	assert.Equal(t, chat.ID, message.ChatID)
	assert.Equal(t, sarah.ID, message.UserID)
	assert.Equal(t, "sarah", message.User.Username)

	messages, err := svc.GetChatMessages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "no fate", messages[0].Text)
}

func TestChatService_CreateMessageChatNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")

	_, err := svc.CreateMessage(context.Background(), 9, sarah, "hello?")
	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Chat", notFound.EntityName)
	assert.Equal(t, uint(9), notFound.EntityID)
}

func TestChatService_CreateMessageEmptyText(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))

	sarah := testutil.CreateUser(t, db, "sarah", "sarah@example.com")
	chat := testutil.CreateChat(t, db, "skynet", sarah)

	_, err := svc.CreateMessage(context.Background(), chat.ID, sarah, "   ")
	require.Error(t, err)
}

func TestChatService_GetChatMembersNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewChatService(repository.NewChatRepository(db))

	_, err := svc.GetChatMembers(context.Background(), 3)
	var notFound *model.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Chat", notFound.EntityName)
}
