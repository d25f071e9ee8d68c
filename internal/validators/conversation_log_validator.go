package validators

import (
	"strconv"
	"strings"

	"conversationLogger/internal/errs"
	"conversationLogger/internal/models"
)

func ValidateCreateConversationLog(request *models.CreateConversationLogRequest) []error {
	var errors []error
	if request == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if strings.TrimSpace(request.ConversationID) == "" {
		errors = append(errors, errs.ErrInvalidConversationId)
	}

	if strings.TrimSpace(request.UserID) == "" {
		errors = append(errors, errs.ErrInvalidUserId)
	}

	// An empty message is a valid log line; only a missing one is rejected.
	if request.Message == nil {
		errors = append(errors, errs.ErrMissingMessage)
	}
	return errors
}

// ParseLimit accepts an empty value (meaning the default) or a positive integer.
func ParseLimit(value string) (int, error) {
	if value == "" {
		return models.DefaultLogLimit, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return 0, errs.ErrInvalidLimit
	}
	return limit, nil
}
