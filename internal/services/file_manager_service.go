package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"conversationLogger/internal/interfaces"
	"conversationLogger/internal/models"

	"github.com/google/uuid"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
	now         func() time.Time
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
		now:         time.Now,
	}
}

// ArchiveConversationLogs uploads logs as one JSON array and returns the object URL.
func (fs *FileManagerService) ArchiveConversationLogs(ctx context.Context, logs []models.ConversationLog, bucketName string) (string, error) {
	if logs == nil {
		logs = []models.ConversationLog{}
	}
	body, err := json.Marshal(logs)
	if err != nil {
		return "", err
	}
	return fs.fileManager.UploadFile(ctx, ArchiveObjectName(fs.now()), bytes.NewReader(body), int64(len(body)), "application/json", bucketName)
}

func ArchiveObjectName(at time.Time) string {
	return fmt.Sprintf("conversations-%s-%s.json", at.UTC().Format("20060102T150405Z"), uuid.NewString())
}
