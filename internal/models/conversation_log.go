package models

import (
	"time"

	"gorm.io/gorm"
)

// ConversationLog is one logged chatbot message.
type ConversationLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID string    `gorm:"index;not null" json:"conversation_id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	Message        string    `gorm:"not null" json:"message"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`
	Metadata       Metadata  `gorm:"type:jsonb" json:"metadata"`
}

func (ConversationLog) TableName() string {
	return "conversation_logs"
}

func (log *ConversationLog) BeforeCreate(tx *gorm.DB) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return nil
}
