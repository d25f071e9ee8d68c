package services

import (
	"context"
	"fmt"

	"conversationLogger/internal/errs"
	"conversationLogger/internal/logger"
	"conversationLogger/internal/models"
	"conversationLogger/internal/repositories"
	"conversationLogger/internal/validators"
)

type ConversationLogService struct {
	logRepo   *repositories.ConversationLogRepository
	publisher LogPublisher
	archiver  *FileManagerService
	bucket    string
}

// NewConversationLogService wires the repository with optional collaborators:
// publisher may be nil (no live tail) and archiver may be nil (no archiving).
func NewConversationLogService(
	logRepo *repositories.ConversationLogRepository,
	publisher LogPublisher,
	archiver *FileManagerService,
	bucket string,
) *ConversationLogService {
	return &ConversationLogService{
		logRepo:   logRepo,
		publisher: publisher,
		archiver:  archiver,
		bucket:    bucket,
	}
}

func (cls *ConversationLogService) CreateLog(ctx context.Context, request *models.CreateConversationLogRequest) (*models.ConversationLog, []error) {
	if validationErrs := validators.ValidateCreateConversationLog(request); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	log, errors := cls.logRepo.CreateLog(request.ToConversationLog())
	if len(errors) > 0 {
		return nil, errors
	}

	if cls.publisher != nil {
		if err := cls.publisher.Publish(ctx, log); err != nil {
			logger.L.Warn("failed to publish conversation log", "id", log.ID, "error", err)
		}
	}
	return log, nil
}

func (cls *ConversationLogService) GetLogs(filter models.ConversationLogFilter) ([]models.ConversationLog, []error) {
	if filter.Limit < 1 {
		return nil, []error{errs.ErrInvalidLimit}
	}
	return cls.logRepo.GetLogs(filter)
}

func (cls *ConversationLogService) GetAllLogs() ([]models.ConversationLog, error) {
	return cls.logRepo.GetAllLogs()
}

// FlushLogs deletes every stored log. With archive set, the rows are uploaded
// first and nothing is deleted if the upload fails.
func (cls *ConversationLogService) FlushLogs(ctx context.Context, archive bool) (*models.FlushResult, error) {
	result := &models.FlushResult{}

	if archive {
		if cls.archiver == nil {
			return nil, fmt.Errorf("%w: no archive storage configured", errs.ErrArchiveFailure)
		}
		logs, err := cls.logRepo.GetAllLogs()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrStorageFailure, err)
		}
		url, err := cls.archiver.ArchiveConversationLogs(ctx, logs, cls.bucket)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrArchiveFailure, err)
		}
		result.ArchiveURL = url
		logger.L.Info("archived conversation logs", "count", len(logs), "url", url)
	}

	deleted, err := cls.logRepo.DeleteAllLogs()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageFailure, err)
	}
	result.Deleted = deleted
	return result, nil
}
