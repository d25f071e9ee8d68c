package handlers

import (
	"context"
	"net/http"

	"conversationLogger/internal/logger"
	"conversationLogger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// SocketTailHandler relays every published conversation log to connected websocket clients.
type SocketTailHandler struct {
	ctx      context.Context
	upgrader websocket.Upgrader
	hub      *models.SocketHub
}

func NewSocketTailHandler(ctx context.Context, redis *redis.Client, channel string) *SocketTailHandler {
	return &SocketTailHandler{
		ctx: ctx,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		hub: &models.SocketHub{
			Clients: make(map[string]*websocket.Conn),
			Redis:   redis,
			Channel: channel,
		},
	}
}

func (sth *SocketTailHandler) HandleTailRoute(ctx *gin.Context) {
	ws, err := sth.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.L.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer func(ws *websocket.Conn) {
		if err := ws.Close(); err != nil {
			logger.L.Debug("error closing connection", "error", err)
		}
	}(ws)

	clientId := uuid.NewString()
	sth.addClient(clientId, ws)
	defer sth.removeClient(clientId)

	// Clients only listen; reading keeps control frames flowing and notices hang-ups.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			logger.L.Debug("tail client disconnected", "client", clientId, "error", err)
			return
		}
	}
}

func (sth *SocketTailHandler) addClient(clientId string, ws *websocket.Conn) {
	sth.hub.Mu.Lock()
	sth.hub.Clients[clientId] = ws
	sth.hub.Mu.Unlock()
	logger.L.Debug("tail client connected", "client", clientId)
}

func (sth *SocketTailHandler) removeClient(clientId string) {
	sth.hub.Mu.Lock()
	delete(sth.hub.Clients, clientId)
	sth.hub.Mu.Unlock()
}

func (sth *SocketTailHandler) ClientCount() int {
	sth.hub.Mu.Lock()
	defer sth.hub.Mu.Unlock()
	return len(sth.hub.Clients)
}

// Broadcast writes payload to every client, dropping the ones that fail.
func (sth *SocketTailHandler) Broadcast(payload []byte) {
	sth.hub.Mu.Lock()
	defer sth.hub.Mu.Unlock()
	for clientId, client := range sth.hub.Clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.L.Debug("error writing to tail client", "client", clientId, "error", err)
			_ = client.Close()
			delete(sth.hub.Clients, clientId)
		}
	}
}

// HandleRedisMessages forwards channel messages until ctx is done.
func (sth *SocketTailHandler) HandleRedisMessages() error {
	pubsub := sth.hub.Redis.Subscribe(sth.ctx, sth.hub.Channel)
	defer pubsub.Close()
	if _, err := pubsub.Receive(sth.ctx); err != nil {
		return err
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-sth.ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			sth.Broadcast([]byte(msg.Payload))
		}
	}
}

// CloseAll disconnects every client; used on shutdown.
func (sth *SocketTailHandler) CloseAll() {
	sth.hub.Mu.Lock()
	defer sth.hub.Mu.Unlock()
	for clientId, client := range sth.hub.Clients {
		_ = client.Close()
		delete(sth.hub.Clients, clientId)
	}
}
