package service

import (
	"context"
	"errors"
	"strings"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/repository"
)

type chatService struct {
	chatRepo repository.ChatRepository
}

func NewChatService(chatRepo repository.ChatRepository) ChatService {
	return &chatService{chatRepo: chatRepo}
}

func (s *chatService) ListChats(ctx context.Context) ([]model.Chat, error) {
	return s.chatRepo.FindAll(ctx)
}

func (s *chatService) GetChatByID(ctx context.Context, id uint) (*model.Chat, error) {
	return s.chatRepo.FindWithDetails(ctx, id)
}

func (s *chatService) UpdateChat(ctx context.Context, id uint, name string) (*model.Chat, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("chat name cannot be empty")
	}

	chat, err := s.chatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	chat.Name = name
	if err := s.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

// DeleteChat resolves the target as a chat before deleting it, so an unknown
// id fails with the chat's not-found error.
func (s *chatService) DeleteChat(ctx context.Context, id uint) error {
	if _, err := s.chatRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.chatRepo.Delete(ctx, id)
}

func (s *chatService) GetChatMessages(ctx context.Context, chatID uint) ([]model.Message, error) {
	if _, err := s.chatRepo.FindByID(ctx, chatID); err != nil {
		return nil, err
	}
	return s.chatRepo.Messages(ctx, chatID)
}

func (s *chatService) GetChatMembers(ctx context.Context, chatID uint) ([]model.User, error) {
	chat, err := s.chatRepo.FindWithDetails(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return chat.Users, nil
}

// CreateMessage persists a message authored by the given user in the chat's
// message collection. The chat must exist; the author is the authenticated
// caller resolved by the handler.
func (s *chatService) CreateMessage(ctx context.Context, chatID uint, author *model.User, text string) (*model.Message, error) {
	if author == nil || author.ID == 0 {
		return nil, errors.New("message author is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("message text cannot be empty")
	}

	if _, err := s.chatRepo.FindByID(ctx, chatID); err != nil {
		return nil, err
	}

	message := &model.Message{
		Text:   text,
		UserID: author.ID,
		ChatID: chatID,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	message.User = *author
	return message, nil
}
