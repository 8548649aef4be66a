// Package schema holds the API-facing response shapes. Each entity has a
// single projection function; the envelope types compose them so no endpoint
// builds a nested shape by hand.
package schema

import (
	"time"

	"ponyexpress/backend/internal/model"
)

type Metadata struct {
	Count int `json:"count"`
}

// ChatMetadata is attached to the single-chat detail response.
type ChatMetadata struct {
	MessageCount int `json:"message_count"`
	UserCount    int `json:"user_count"`
}

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Chat struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Owner     User      `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        uint      `json:"id"`
	ChatID    uint      `json:"chat_id"`
	Text      string    `json:"text"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u model.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewChat expects the chat's Owner association to be loaded.
func NewChat(c model.Chat) Chat {
	return Chat{
		ID:        c.ID,
		Name:      c.Name,
		Owner:     NewUser(c.Owner),
		CreatedAt: c.CreatedAt,
	}
}

// NewMessage expects the message's User association to be loaded.
func NewMessage(m model.Message) Message {
	return Message{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Text:      m.Text,
		User:      NewUser(m.User),
		CreatedAt: m.CreatedAt,
	}
}

func NewUsers(users []model.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, NewUser(u))
	}
	return out
}

func NewChats(chats []model.Chat) []Chat {
	out := make([]Chat, 0, len(chats))
	for _, c := range chats {
		out = append(out, NewChat(c))
	}
	return out
}

func NewMessages(messages []model.Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessage(m))
	}
	return out
}

type UserResponse struct {
	User User `json:"user"`
}

type ChatResponse struct {
	Chat Chat `json:"chat"`
}

type MessageResponse struct {
	Message Message `json:"message"`
}

// ChatDetailResponse is the GET /chats/{id} shape. Messages and Users are
// attached only when the caller asked for them via the include parameter.
// The fields are slice pointers so a requested expansion still renders as an
// empty array when the chat has no messages or members.
type ChatDetailResponse struct {
	Meta     ChatMetadata `json:"meta"`
	Chat     Chat         `json:"chat"`
	Messages *[]Message   `json:"messages,omitempty"`
	Users    *[]User      `json:"users,omitempty"`
}

type UserCollection struct {
	Meta  Metadata `json:"meta"`
	Users []User   `json:"users"`
}

type ChatCollection struct {
	Meta  Metadata `json:"meta"`
	Chats []Chat   `json:"chats"`
}

type MessageCollection struct {
	Meta     Metadata  `json:"meta"`
	Messages []Message `json:"messages"`
}
