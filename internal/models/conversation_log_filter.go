package models

const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

type ConversationLogFilter struct {
	ConversationID string
	UserID         string
	Limit          int
}
