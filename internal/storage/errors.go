package storage

import "errors"

var (
	ErrNoConnection = errors.New("can't establish connection to db")

	ErrInternal = errors.New("internal error")

	ErrAccountNotFound = errors.New("account is not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrDocumentMissing = errors.New("document is not found")
	ErrRoomNotFound    = errors.New("chat room is not found")

	ErrNoOutbox = errors.New("have no outbox to send")
)
