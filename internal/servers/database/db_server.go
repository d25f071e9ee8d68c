package database

import (
	"fmt"
	"log/slog"

	"conversationLogger/configs"
	"conversationLogger/internal/logger"
	"conversationLogger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open connects to postgres and migrates the schema.
func Open(config *configs.Config) (*gorm.DB, error) {
	psql := getPSQL(config)
	dsn := fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		psql.Host, psql.User, psql.Password, psql.Name, psql.Port, psql.SSL, psql.Timezone,
	)

	logLevel := gormLogger.Warn
	if logger.Level() <= slog.LevelDebug {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.L.Warn("failed to get database handle", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.L.Warn("failed to close database", "error", err)
	}
}

func getPSQL(config *configs.Config) *models.PSQL {
	return &models.PSQL{
		Host:     config.Viper.GetString("database.host"),
		Port:     config.Viper.GetInt("database.port"),
		User:     config.Viper.GetString("database.user"),
		Password: config.Viper.GetString("database.password"),
		Name:     config.Viper.GetString("database.name"),
		SSL:      config.Viper.GetString("database.ssl"),
		Timezone: config.Viper.GetString("database.timezone"),
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ConversationLog{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.L.Info("Database migrated successfully")
	return nil
}
