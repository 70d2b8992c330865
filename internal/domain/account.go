package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the backend-side credential record.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
}

type Document struct {
	Collection string
	ID         string
	Fields     map[string]any
}

// Message is the backend-side record of a chat message.
type Message struct {
	ID         uuid.UUID `json:"id"`
	ChatRoomID uuid.UUID `json:"chatRoomID"`
	UserID     uuid.UUID `json:"userID"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"date"`
}

// MessageCursor is a position in a room's history. Messages sort by
// CreatedAt and then by ID.
type MessageCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type Room struct {
	ID        uuid.UUID
	StudyID   string
	UserIDs   []uuid.UUID
	CreatedAt time.Time
}
