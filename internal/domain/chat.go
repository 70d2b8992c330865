package domain

import "time"

// Chat is a single message as shown on the chat screen.
//
// IsFromCurrentUser is nil when the current user could not be determined and
// User is nil when the sender account no longer exists. Either case renders
// the withdrawn-user bubble.
type Chat struct {
	ID                string
	Message           string
	Date              time.Time
	IsFromCurrentUser *bool
	User              *User
}

func (c Chat) FromCurrentUser() bool {
	return c.IsFromCurrentUser != nil && *c.IsFromCurrentUser
}

// Cursor points just past c when paging towards older messages.
func (c Chat) Cursor() ChatCursor {
	return ChatCursor{Date: c.Date, ID: c.ID}
}

// ChatCursor selects the messages strictly older than (Date, ID). The zero
// cursor selects the latest page.
type ChatCursor struct {
	Date time.Time
	ID   string
}

func (c ChatCursor) IsZero() bool {
	return c.Date.IsZero() && c.ID == ""
}

type ChatRoom struct {
	ID        string
	StudyID   string
	UserIDs   []string
	CreatedAt time.Time
}
