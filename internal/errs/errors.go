package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody    = Error("invalid request body")
	ErrInvalidConversationId = Error("conversation_id is required")
	ErrInvalidUserId         = Error("user_id is required")
	ErrMissingMessage        = Error("message is required")
	ErrInvalidLimit          = Error("limit must be a positive integer")
	ErrLogIsNil              = Error("conversation log is nil")
	ErrStorageFailure        = Error("storage failure")
	ErrArchiveFailure        = Error("archive failure")
)

const (
	ErrUnexpectedPayload = Error("unexpected payload: expected a JSON array")
)
