package model

import "time"

// Chat has exactly one owner and any number of members. Ownership and
// membership are separate relations; an owner is not required to be a member.
type Chat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint      `json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Users    []User    `gorm:"many2many:user_chat_links;" json:"-"`
	Messages []Message `json:"-"`
}

// UserChatLink is the membership join row between users and chats.
type UserChatLink struct {
	UserID uint `gorm:"primaryKey"`
	ChatID uint `gorm:"primaryKey"`
}

func (UserChatLink) TableName() string {
	return "user_chat_links"
}
