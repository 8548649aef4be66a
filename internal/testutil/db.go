// Package testutil provides an in-memory database and fixture helpers for
// tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/repository"
)

// NewTestDB opens an in-memory sqlite store with the full schema. The pool is
// pinned to a single connection so the in-memory database is shared.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username, email string) *model.User {
	t.Helper()

	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateChat inserts a chat owned by owner with the given members. The owner
// is not implicitly added as a member.
func CreateChat(t *testing.T, db *gorm.DB, name string, owner *model.User, members ...*model.User) *model.Chat {
	t.Helper()

	chat := &model.Chat{Name: name, OwnerID: owner.ID}
	require.NoError(t, db.Create(chat).Error)

	for _, member := range members {
		require.NoError(t, db.Create(&model.UserChatLink{
			UserID: member.ID,
			ChatID: chat.ID,
		}).Error)
	}

	return chat
}

func CreateMessage(t *testing.T, db *gorm.DB, chat *model.Chat, author *model.User, text string) *model.Message {
	t.Helper()

	message := &model.Message{
		Text:   text,
		UserID: author.ID,
		ChatID: chat.ID,
	}
	require.NoError(t, db.Create(message).Error)
	return message
}
