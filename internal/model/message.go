package model

import "time"

// Message is immutable once created: there is no update or delete operation.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	UserID    uint      `json:"user_id"`
	ChatID    uint      `json:"chat_id"`
	User      User      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
