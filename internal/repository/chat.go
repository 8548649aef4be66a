package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ponyexpress/backend/internal/model"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *model.Chat) error
	FindAll(ctx context.Context) ([]model.Chat, error)
	FindAllWithMembers(ctx context.Context) ([]model.Chat, error)
	FindByID(ctx context.Context, id uint) (*model.Chat, error)
	FindWithDetails(ctx context.Context, id uint) (*model.Chat, error)
	Update(ctx context.Context, chat *model.Chat) error
	Delete(ctx context.Context, id uint) error
	AddUser(ctx context.Context, chatID, userID uint) error
	Messages(ctx context.Context, chatID uint) ([]model.Message, error)
	CreateMessage(ctx context.Context, message *model.Message) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, chat *model.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *chatRepository) FindAll(ctx context.Context) ([]model.Chat, error) {
	var chats []model.Chat
	if err := r.db.WithContext(ctx).Preload("Owner").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) FindAllWithMembers(ctx context.Context) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Users").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) FindByID(ctx context.Context, id uint) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.WithContext(ctx).Preload("Owner").First(&chat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.EntityNotFoundError{EntityName: "Chat", EntityID: id}
		}
		return nil, err
	}
	return &chat, nil
}

// FindWithDetails loads the chat with its owner, members and messages
// (message authors included) for the detail response.
func (r *chatRepository) FindWithDetails(ctx context.Context, id uint) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Users").
		Preload("Messages.User").
		First(&chat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.EntityNotFoundError{EntityName: "Chat", EntityID: id}
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) Update(ctx context.Context, chat *model.Chat) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(chat).Error
}

// Delete removes the chat row only. Messages and membership links referencing
// the chat are left in place.
func (r *chatRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Chat{}, id).Error
}

func (r *chatRepository) AddUser(ctx context.Context, chatID, userID uint) error {
	return r.db.WithContext(ctx).Create(&model.UserChatLink{
		UserID: userID,
		ChatID: chatID,
	}).Error
}

func (r *chatRepository) Messages(ctx context.Context, chatID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("chat_id = ?", chatID).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error
}
