package documents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/google/uuid"
)

const UserCollection = "User"

type DocumentStorage interface {
	SetDocument(ctx context.Context, doc domain.Document) error
	GetDocument(ctx context.Context, collection, id string) (*domain.Document, error)
}

var (
	ErrInvalidDocument  = errors.New("collection and id are required")
	ErrPermissionDenied = errors.New("have no permission for this operation")
)

type DocumentService struct {
	log     *slog.Logger
	storage DocumentStorage
}

func New(log *slog.Logger, storage DocumentStorage) *DocumentService {
	return &DocumentService{log: log, storage: storage}
}

// SetDocument writes doc on behalf of caller. Profile documents can only be
// written by their owner.
func (d *DocumentService) SetDocument(ctx context.Context, caller uuid.UUID, doc domain.Document) error {
	const op = "documents.SetDocument"
	log := d.log.With(slog.String("op", op))

	if doc.Collection == "" || doc.ID == "" {
		return ErrInvalidDocument
	}
	if doc.Collection == UserCollection && doc.ID != caller.String() {
		log.Warn("foreign profile write", slog.String("caller", caller.String()), slog.String("id", doc.ID))
		return ErrPermissionDenied
	}

	if err := d.storage.SetDocument(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (d *DocumentService) GetDocument(ctx context.Context, collection, id string) (*domain.Document, error) {
	const op = "documents.GetDocument"

	if collection == "" || id == "" {
		return nil, ErrInvalidDocument
	}

	doc, err := d.storage.GetDocument(ctx, collection, id)
	if errors.Is(err, storage.ErrDocumentMissing) {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}
