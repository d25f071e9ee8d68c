package enums

const (
	EVENT_CONVERSATION_LOGGED = "conversation_logged"
)

const (
	FILE_BUCKET_CONVERSATION_ARCHIVES = "conversation-archives"
)
