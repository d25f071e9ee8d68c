package models

type RedisPublishedMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}
