package service

import (
	"context"

	"ponyexpress/backend/internal/model"
)

type UserService interface {
	CreateUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, update model.UserUpdate) (*model.User, error)
	GetUserChats(ctx context.Context, userID uint) ([]model.Chat, error)
}

type ChatService interface {
	ListChats(ctx context.Context) ([]model.Chat, error)
	GetChatByID(ctx context.Context, id uint) (*model.Chat, error)
	UpdateChat(ctx context.Context, id uint, name string) (*model.Chat, error)
	DeleteChat(ctx context.Context, id uint) error
	GetChatMessages(ctx context.Context, chatID uint) ([]model.Message, error)
	GetChatMembers(ctx context.Context, chatID uint) ([]model.User, error)
	CreateMessage(ctx context.Context, chatID uint, author *model.User, text string) (*model.Message, error)
}
