package repositories

import (
	"conversationLogger/internal/errs"
	"conversationLogger/internal/models"

	"gorm.io/gorm"
)

type ConversationLogRepository struct {
	db *gorm.DB
}

func NewConversationLogRepository(db *gorm.DB) *ConversationLogRepository {
	return &ConversationLogRepository{
		db: db,
	}
}

func (clr *ConversationLogRepository) CreateLog(log *models.ConversationLog) (*models.ConversationLog, []error) {
	var errors []error
	if log == nil {
		errors = append(errors, errs.ErrLogIsNil)
		return nil, errors
	}

	transactionErr := clr.db.Transaction(func(tx *gorm.DB) error {
		// return any error will rollback
		return tx.Create(log).Error
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}
	return log, nil
}

// GetLogs returns the newest logs first, narrowed by the optional filter fields.
func (clr *ConversationLogRepository) GetLogs(filter models.ConversationLogFilter) ([]models.ConversationLog, []error) {
	var errors []error
	logs := []models.ConversationLog{}

	query := clr.db.Model(&models.ConversationLog{})
	if filter.ConversationID != "" {
		query = query.Where("conversation_id = ?", filter.ConversationID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if err := query.
		Scopes(Limit(filter.Limit)).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&logs).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return logs, nil
}

func (clr *ConversationLogRepository) GetAllLogs() ([]models.ConversationLog, error) {
	logs := []models.ConversationLog{}
	err := clr.db.Order("timestamp DESC").Order("id DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (clr *ConversationLogRepository) CountLogs() (int64, error) {
	var total int64
	err := clr.db.Model(&models.ConversationLog{}).Count(&total).Error
	return total, err
}

// DeleteAllLogs removes every row inside one transaction and reports how many went.
func (clr *ConversationLogRepository) DeleteAllLogs() (int64, error) {
	var deleted int64
	err := clr.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ConversationLog{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func Limit(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case limit <= 0:
			limit = models.DefaultLogLimit
		case limit > models.MaxLogLimit:
			limit = models.MaxLogLimit
		}
		return db.Limit(limit)
	}
}
