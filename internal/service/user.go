package service

import (
	"context"
	"errors"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	chatRepo repository.ChatRepository
}

func NewUserService(userRepo repository.UserRepository, chatRepo repository.ChatRepository) UserService {
	return &userService{userRepo: userRepo, chatRepo: chatRepo}
}

// CreateUser pre-checks uniqueness so a duplicate surfaces as a domain error
// instead of a raw store constraint violation.
func (s *userService) CreateUser(ctx context.Context, user *model.User) error {
	if user.Username == "" {
		return errors.New("username is required")
	}
	if user.Email == "" {
		return errors.New("email is required")
	}
	if user.HashedPassword == "" {
		return errors.New("password is required")
	}

	taken, err := s.userRepo.UsernameTaken(ctx, user.Username, 0)
	if err != nil {
		return err
	}
	if taken {
		return &model.DuplicateEntityError{EntityName: "User", EntityID: user.Username}
	}

	taken, err = s.userRepo.EmailTaken(ctx, user.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return &model.DuplicateEntityError{EntityName: "User", EntityID: user.Email}
	}

	return s.userRepo.Create(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, errors.New("invalid username")
	}
	return s.userRepo.FindByUsername(ctx, username)
}

// UpdateUser applies only the fields present in the update. Either field may
// be nil, meaning "no change". Changed values are re-checked for uniqueness
// (excluding the user itself) before the write.
func (s *userService) UpdateUser(ctx context.Context, id uint, update model.UserUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		taken, err := s.userRepo.UsernameTaken(ctx, *update.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &model.DuplicateEntityError{EntityName: "User", EntityID: *update.Username}
		}
		user.Username = *update.Username
	}

	if update.Email != nil {
		taken, err := s.userRepo.EmailTaken(ctx, *update.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &model.DuplicateEntityError{EntityName: "User", EntityID: *update.Email}
		}
		user.Email = *update.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserChats resolves the user, then scans all chats for membership.
// A full scan is fine at this scale; an indexed query against the join table
// would replace it if the chat count grew.
func (s *userService) GetUserChats(ctx context.Context, userID uint) ([]model.Chat, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	chats, err := s.chatRepo.FindAllWithMembers(ctx)
	if err != nil {
		return nil, err
	}

	var memberOf []model.Chat
	for _, chat := range chats {
		for _, member := range chat.Users {
			if member.ID == user.ID {
				memberOf = append(memberOf, chat)
				break
			}
		}
	}

	return memberOf, nil
}
