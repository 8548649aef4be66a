package model

import "time"

// User is the database model for a registered account. The password hash
// never leaves the API; responses go through schema.NewUser.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`

	Chats []Chat `gorm:"many2many:user_chat_links;" json:"-"`
}

// UserUpdate carries a partial update. A nil field means "no change".
type UserUpdate struct {
	Username *string
	Email    *string
}
