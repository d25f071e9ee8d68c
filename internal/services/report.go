package services

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"conversationLogger/internal/models"
)

// WriteReport prints every stored log, newest first, followed by the total.
func (cls *ConversationLogService) WriteReport(w io.Writer) error {
	logs, err := cls.GetAllLogs()
	if err != nil {
		return err
	}
	total, err := cls.logRepo.CountLogs()
	if err != nil {
		return err
	}
	return writeReport(w, logs, total)
}

func writeReport(w io.Writer, logs []models.ConversationLog, total int64) error {
	if len(logs) == 0 {
		_, err := fmt.Fprintln(w, "No records found in the database.")
		return err
	}

	separator := strings.Repeat("-", 50)
	for _, log := range logs {
		metadata := "None"
		if log.Metadata != nil {
			b, err := json.Marshal(log.Metadata)
			if err != nil {
				return err
			}
			metadata = string(b)
		}
		if _, err := fmt.Fprintf(w,
			"\nID: %d\nConversation ID: %s\nUser ID: %s\nMessage: %s\nTimestamp: %s\nMetadata: %s\n%s\n",
			log.ID, log.ConversationID, log.UserID, log.Message,
			formatTimestamp(log.Timestamp), metadata, separator,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nTotal records: %d\n", total)
	return err
}

// formatTimestamp prints microseconds only when there are any.
func formatTimestamp(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}
