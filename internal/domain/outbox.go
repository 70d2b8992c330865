package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTopic = "chat-messages"
)

type Outbox struct {
	ID      int64
	Key     uuid.UUID
	Topic   string
	Payload []byte
	SentAt  *time.Time
}
