package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversationLogger/configs"
	"conversationLogger/internal/handlers"
	"conversationLogger/internal/logger"

	"github.com/gin-gonic/gin"
)

type HttpServer struct {
	ctx         context.Context
	config      *configs.Config
	router      *gin.Engine
	restHandler *handlers.RestHandler
	tailHandler *handlers.SocketTailHandler
}

// NewHttpServer builds the router; tailHandler may be nil to disable live tail.
func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	tailHandler *handlers.SocketTailHandler,
) *HttpServer {
	hs := &HttpServer{
		ctx:         ctx,
		config:      config,
		restHandler: restHandler,
		tailHandler: tailHandler,
	}
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()
	return hs
}

func (hs *HttpServer) Router() *gin.Engine {
	return hs.router
}

func (hs *HttpServer) Run() error {
	if hs.tailHandler != nil {
		go func() {
			if err := hs.tailHandler.HandleRedisMessages(); err != nil {
				logger.L.Error("live tail subscription stopped", "error", err)
			}
		}()
	}

	server, errCh := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	return hs.waitForShutdown(server, errCh)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.New()
	hs.router.Use(gin.Recovery(), handlers.RequestLoggerMiddleware())
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.GET("/healthz", hs.restHandler.Health)

	api := hs.router.Group("/api")
	api.POST("/conversations", hs.restHandler.CreateConversationLog)
	api.GET("/conversations", hs.restHandler.GetConversationLogs)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	if hs.tailHandler == nil {
		return
	}
	hs.router.GET("/ws/conversations", hs.tailHandler.HandleTailRoute)
}

func (hs *HttpServer) startServer() (*http.Server, <-chan error) {
	addr := fmt.Sprintf("%s:%d", hs.config.Viper.GetString("server.host"), hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("HTTP server started", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return server, errCh
}

func (hs *HttpServer) waitForShutdown(server *http.Server, errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-quit:
	case <-hs.ctx.Done():
	}
	logger.L.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Close all WebSocket connections
	if hs.tailHandler != nil {
		hs.tailHandler.CloseAll()
	}

	logger.L.Info("Server exiting")
	return nil
}
