package models

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// SocketHub tracks live-tail websocket clients, keyed by connection id.
type SocketHub struct {
	Clients map[string]*websocket.Conn
	Mu      sync.Mutex
	Redis   *redis.Client
	Channel string
}
