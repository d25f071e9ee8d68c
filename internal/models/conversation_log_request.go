package models

// Message is a pointer so a missing field can be told apart from an empty string.
type CreateConversationLogRequest struct {
	ConversationID string   `json:"conversation_id"`
	UserID         string   `json:"user_id"`
	Message        *string  `json:"message"`
	Metadata       Metadata `json:"metadata"`
}

func (request *CreateConversationLogRequest) ToConversationLog() *ConversationLog {
	log := &ConversationLog{
		ConversationID: request.ConversationID,
		UserID:         request.UserID,
		Metadata:       request.Metadata,
	}
	if request.Message != nil {
		log.Message = *request.Message
	}
	return log
}
