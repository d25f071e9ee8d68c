package repositories

import (
	"fmt"
	"testing"
	"time"

	"conversationLogger/internal/errs"
	"conversationLogger/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ConversationLog{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seed(t *testing.T, repo *ConversationLogRepository, base time.Time, entries ...[2]string) {
	t.Helper()
	for i, e := range entries {
		_, errs := repo.CreateLog(&models.ConversationLog{
			ConversationID: e[0],
			UserID:         e[1],
			Message:        fmt.Sprintf("message %d", i),
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
		})
		require.Empty(t, errs)
	}
}

func TestCreateLog_SetsIDAndTimestamp(t *testing.T) {
	repo := NewConversationLogRepository(newTestDB(t))

	log, errors := repo.CreateLog(&models.ConversationLog{
		ConversationID: "c1",
		UserID:         "u1",
		Message:        "hello",
		Metadata:       models.Metadata{"channel": "web"},
	})
	require.Empty(t, errors)
	assert.NotZero(t, log.ID)
	assert.False(t, log.Timestamp.IsZero())

	logs, errors := repo.GetLogs(models.ConversationLogFilter{})
	require.Empty(t, errors)
	require.Len(t, logs, 1)
	assert.Equal(t, "web", logs[0].Metadata["channel"])
}

func TestCreateLog_Nil(t *testing.T) {
	repo := NewConversationLogRepository(newTestDB(t))
	_, errors := repo.CreateLog(nil)
	require.Len(t, errors, 1)
	assert.ErrorIs(t, errors[0], errs.ErrLogIsNil)
}

func TestGetLogs_FilterOrderLimit(t *testing.T) {
	repo := NewConversationLogRepository(newTestDB(t))
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seed(t, repo, base,
		[2]string{"c1", "u1"},
		[2]string{"c1", "u2"},
		[2]string{"c2", "u1"},
		[2]string{"c1", "u1"},
	)

	logs, errors := repo.GetLogs(models.ConversationLogFilter{})
	require.Empty(t, errors)
	require.Len(t, logs, 4)
	assert.Equal(t, "message 3", logs[0].Message, "newest first")
	assert.Equal(t, "message 0", logs[3].Message)

	logs, errors = repo.GetLogs(models.ConversationLogFilter{ConversationID: "c1"})
	require.Empty(t, errors)
	assert.Len(t, logs, 3)

	logs, errors = repo.GetLogs(models.ConversationLogFilter{ConversationID: "c1", UserID: "u1"})
	require.Empty(t, errors)
	require.Len(t, logs, 2)
	assert.Equal(t, "message 3", logs[0].Message)

	logs, errors = repo.GetLogs(models.ConversationLogFilter{Limit: 1})
	require.Empty(t, errors)
	require.Len(t, logs, 1)
	assert.Equal(t, "message 3", logs[0].Message)

	logs, errors = repo.GetLogs(models.ConversationLogFilter{UserID: "nobody"})
	require.Empty(t, errors)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestDeleteAllLogs(t *testing.T) {
	repo := NewConversationLogRepository(newTestDB(t))
	seed(t, repo, time.Now().UTC(), [2]string{"c1", "u1"}, [2]string{"c2", "u2"})

	deleted, err := repo.DeleteAllLogs()
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	total, err := repo.CountLogs()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetAllLogs(t *testing.T) {
	repo := NewConversationLogRepository(newTestDB(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < models.DefaultLogLimit+5; i++ {
		seed(t, repo, base.Add(time.Duration(i)*time.Hour), [2]string{"c", "u"})
	}

	logs, err := repo.GetAllLogs()
	require.NoError(t, err)
	assert.Len(t, logs, models.DefaultLogLimit+5, "no implicit limit")
}
