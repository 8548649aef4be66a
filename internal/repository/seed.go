package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/pkg/auth"
)

// Seed fixture format. Chats reference users by username so the file stays
// readable; owners are not implicitly added as members.
type seedFile struct {
	Users []seedUser `json:"users"`
	Chats []seedChat `json:"chats"`
}

type seedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type seedChat struct {
	Name     string        `json:"name"`
	Owner    string        `json:"owner"`
	Users    []string      `json:"users"`
	Messages []seedMessage `json:"messages"`
}

type seedMessage struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// LoadSeed populates an empty store from a JSON fixture. It is a no-op when
// the store already has users, so restarts do not duplicate data.
func LoadSeed(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	ctx := context.Background()
	userRepo := NewUserRepository(db)
	chatRepo := NewChatRepository(db)

	usersByName := make(map[string]*model.User, len(seed.Users))
	for _, su := range seed.Users {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:       su.Username,
			Email:          su.Email,
			HashedPassword: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", su.Username, err)
		}
		usersByName[su.Username] = user
	}

	for _, sc := range seed.Chats {
		owner, ok := usersByName[sc.Owner]
		if !ok {
			return fmt.Errorf("seed chat %q: unknown owner %q", sc.Name, sc.Owner)
		}

		chat := &model.Chat{Name: sc.Name, OwnerID: owner.ID}
		if err := chatRepo.Create(ctx, chat); err != nil {
			return fmt.Errorf("failed to seed chat %q: %w", sc.Name, err)
		}

		for _, username := range sc.Users {
			member, ok := usersByName[username]
			if !ok {
				return fmt.Errorf("seed chat %q: unknown member %q", sc.Name, username)
			}
			if err := chatRepo.AddUser(ctx, chat.ID, member.ID); err != nil {
				return err
			}
		}

		for _, sm := range sc.Messages {
			author, ok := usersByName[sm.User]
			if !ok {
				return fmt.Errorf("seed chat %q: unknown author %q", sc.Name, sm.User)
			}
			msg := &model.Message{Text: sm.Text, UserID: author.ID, ChatID: chat.ID}
			if err := chatRepo.CreateMessage(ctx, msg); err != nil {
				return err
			}
		}
	}

	return nil
}
