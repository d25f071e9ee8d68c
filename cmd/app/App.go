package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"conversationLogger/configs"
	"conversationLogger/internal/fetcher"
	"conversationLogger/internal/handlers"
	"conversationLogger/internal/logger"
	"conversationLogger/internal/repositories"
	"conversationLogger/internal/servers/database"
	httpServer "conversationLogger/internal/servers/http"
	"conversationLogger/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

// Init loads configuration and applies the log level. Every command calls it first.
func (app *App) Init(ctx context.Context) {
	app.ctx = ctx
	app.initializeConfigs()
	logger.SetLevel(app.configs.Viper.GetString("log.level"))
}

// LetsGo runs the conversation log API until interrupted.
func (app *App) LetsGo() error {
	app.initializeRedis()
	defer app.redis.Close()

	logService, closeDB, err := app.conversationLogService(false)
	if err != nil {
		return err
	}
	defer closeDB()

	channel := app.configs.Viper.GetString("redis.channel")
	restHandler := handlers.NewRestHandler(logService)
	tailHandler := handlers.NewSocketTailHandler(app.ctx, app.redis, channel)

	return httpServer.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		tailHandler,
	).Run()
}

// Fetch prints the remote conversation logs as a JSON array. In typed mode
// failures are returned instead of being collapsed to an empty list.
func (app *App) Fetch(w io.Writer, rawURL string, typed bool) error {
	endpoint := fetcher.EndpointFromConfig(app.configs)
	if rawURL != "" {
		parsed, err := fetcher.ParseEndpoint(rawURL)
		if err != nil {
			return fmt.Errorf("invalid url %q: %w", rawURL, err)
		}
		endpoint = parsed
	}

	f := fetcher.New(endpoint,
		fetcher.WithHTTPClient(&http.Client{Timeout: app.configs.Viper.GetDuration("fetcher.timeout")}),
		fetcher.WithLogger(logger.L),
	)

	var result any
	if typed {
		logs, err := f.FetchLogs(app.ctx)
		if err != nil {
			return err
		}
		result = logs
	} else {
		result = f.FetchAllConversations(app.ctx)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (app *App) Flush(w io.Writer, archive bool) error {
	logService, closeDB, err := app.conversationLogService(archive)
	if err != nil {
		return err
	}
	defer closeDB()

	result, err := logService.FlushLogs(app.ctx, archive)
	if err != nil {
		return fmt.Errorf("flush database: %w", err)
	}
	if result.ArchiveURL != "" {
		fmt.Fprintf(w, "Archived to %s\n", result.ArchiveURL)
	}
	fmt.Fprintf(w, "Database flushed successfully (%d records deleted)\n", result.Deleted)
	return nil
}

func (app *App) Analytics(w io.Writer) error {
	logService, closeDB, err := app.conversationLogService(false)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := logService.WriteReport(w); err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	return nil
}

// conversationLogService opens the database; callers must run the returned closer.
func (app *App) conversationLogService(withArchive bool) (*services.ConversationLogService, func(), error) {
	db, err := database.Open(app.configs)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { database.Close(db) }
	logRepo := repositories.NewConversationLogRepository(db)

	var publisher services.LogPublisher
	if app.redis != nil {
		publisher = services.NewRedisLogPublisher(app.redis, app.configs.Viper.GetString("redis.channel"))
	}

	var archiver *services.FileManagerService
	if withArchive {
		minioService, err := services.NewMinioService(app.configs)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		archiver = services.NewFileManagerService(minioService)
	}

	return services.NewConversationLogService(
		logRepo,
		publisher,
		archiver,
		app.configs.Viper.GetString("minio.bucket"),
	), closeDB, nil
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
