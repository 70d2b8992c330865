package errs

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")

	ErrDocumentNotFound = errors.New("document not found")

	ErrChatRoomNotFound = errors.New("chat room doesn't exist")
	ErrNotRoomMember    = errors.New("only members of this room can post messages")
)
