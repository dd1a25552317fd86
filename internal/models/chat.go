package models

import (
	"time"
)

// Chat is a named thread grouping an ordered sequence of messages.
type Chat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Deleting a chat cascades to its messages at the store level.
	Messages []Message `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
}

// Message belongs to exactly one chat for its entire lifetime.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	Text      string    `gorm:"size:5000;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
