package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Postgres struct {
	log *slog.Logger
	db  *sql.DB
}

type ConnectOptions struct {
	Host     string
	Port     string
	User     string
	Password string
	DBname   string
}

const (
	accountsTable = "accounts"
	roomsTable    = "chat_rooms"
	messagesTable = "chat_messages"
	outboxTable   = "outbox"

	uniqueViolation = "23505"
)

func New(log *slog.Logger, db *sql.DB) *Postgres {
	return &Postgres{log, db}
}

func NewWithOptions(log *slog.Logger, opt ConnectOptions) (*Postgres, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		opt.Host,
		opt.Port,
		opt.User,
		opt.Password,
		opt.DBname)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("can't open Postgres DB: %w", storage.ErrNoConnection)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("can't ping Postgres DB: %w", storage.ErrNoConnection)
	}

	return &Postgres{log: log, db: db}, nil
}

// Migrate creates the tables if they are missing.
func (p *Postgres) Migrate(ctx context.Context) error {
	const op = "postgres.Migrate"

	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

type txKey struct{}

func injectTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func (p *Postgres) extractTx(ctx context.Context) (tx *sql.Tx, closeTx func(err error), err error) {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx, func(err error) {}, nil
	}

	tx, err = p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return tx, func(err error) {
		if err != nil {
			errRollback := tx.Rollback()
			if errRollback != nil {
				p.log.Error("error according rollback transaction in DB", sl.Err(errRollback))
			}
			return
		}
		errCommit := tx.Commit()
		if errCommit != nil {
			p.log.Error("error according commit transaction in DB", sl.Err(errCommit))
		}
	}, nil
}

// WithTx runs tFunc inside one transaction. Storage calls made with the
// context passed to tFunc join that transaction.
func (p *Postgres) WithTx(ctx context.Context, tFunc func(ctx context.Context) error) error {
	op := "postgres.WithTx"
	log := p.log.With(slog.String("op", op))

	tx, beginError := p.db.BeginTx(ctx, nil)
	if beginError != nil {
		log.Error("error with Start transaction", sl.Err(beginError))
		return storage.ErrInternal
	}

	ctxTx := injectTx(ctx, tx)

	fnError := tFunc(ctxTx)

	if fnError != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("error with Rollback transaction", sl.Err(rollbackErr))
			return storage.ErrInternal
		}
		return fnError
	}

	if commitError := tx.Commit(); commitError != nil {
		log.Error("error with Commit transaction", sl.Err(commitError))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	const op = "postgres.CreateAccount"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	query := fmt.Sprintf("INSERT INTO %s (id, email, password) VALUES ($1,$2,$3)", accountsTable)
	_, err = tx.ExecContext(ctx, query, account.ID, account.Email, account.PasswordHash)
	closeTx(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, storage.ErrAccountExists
	}
	if err != nil {
		log.Error("can't insert account", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &account, nil
}

func (p *Postgres) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const op = "postgres.GetAccountByEmail"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	var account domain.Account

	query := fmt.Sprintf("SELECT id, email, password FROM %s WHERE email = $1", accountsTable)
	row := tx.QueryRowContext(ctx, query, email)
	err = row.Scan(&account.ID, &account.Email, &account.PasswordHash)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAccountNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &account, nil
}

func (p *Postgres) CreateRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	const op = "postgres.CreateRoom"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	query := fmt.Sprintf("INSERT INTO %s (id, study_id, user_ids, created_at) VALUES ($1,$2,$3,$4)", roomsTable)
	_, err = tx.ExecContext(ctx, query, room.ID, room.StudyID, pq.Array(uuidsToStrings(room.UserIDs)), room.CreatedAt)
	closeTx(err)

	if err != nil {
		log.Error("can't insert chat room", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &room, nil
}

func (p *Postgres) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	const op = "postgres.GetRoom"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	var room domain.Room
	var userIDs pq.StringArray

	query := fmt.Sprintf("SELECT id, study_id, user_ids, created_at FROM %s WHERE id = $1", roomsTable)
	row := tx.QueryRowContext(ctx, query, roomID)
	err = row.Scan(&room.ID, &room.StudyID, &userIDs, &room.CreatedAt)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrRoomNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	room.UserIDs, err = stringsToUuids(userIDs)
	if err != nil {
		log.Error("corrupted member list", slog.String("room", roomID.String()), sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &room, nil
}

func (p *Postgres) ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error) {
	const op = "postgres.ListRooms"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	query := fmt.Sprintf("SELECT id, study_id, user_ids, created_at FROM %s WHERE $1 = ANY(user_ids) ORDER BY created_at DESC", roomsTable)
	rows, err := tx.QueryContext(ctx, query, userID.String())
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var userIDs pq.StringArray
		if err = rows.Scan(&room.ID, &room.StudyID, &userIDs, &room.CreatedAt); err != nil {
			break
		}
		if room.UserIDs, err = stringsToUuids(userIDs); err != nil {
			break
		}
		rooms = append(rooms, room)
	}
	if err == nil {
		err = rows.Err()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return rooms, nil
}

func (p *Postgres) CreateMessage(ctx context.Context, message domain.Message) (*domain.Message, error) {
	const op = "postgres.CreateMessage"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	query := fmt.Sprintf("INSERT INTO %s (id, chat_room_id, user_id, body, created_at) VALUES ($1,$2,$3,$4,$5)", messagesTable)
	_, err = tx.ExecContext(ctx, query, message.ID, message.ChatRoomID, message.UserID, message.Body, message.CreatedAt)
	closeTx(err)

	if err != nil {
		log.Error("can't insert message", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &message, nil
}

// GetMessages returns up to limit messages of the room positioned strictly
// before the cursor, oldest first. Messages sharing a timestamp are ordered by
// id so no page boundary skips or repeats one.
func (p *Postgres) GetMessages(ctx context.Context, roomID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error) {
	const op = "postgres.GetMessages"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	query := fmt.Sprintf(
		"SELECT id, chat_room_id, user_id, body, created_at FROM %s WHERE chat_room_id = $1 AND (created_at, id) < ($2, $3) ORDER BY created_at DESC, id DESC LIMIT $4",
		messagesTable)
	rows, err := tx.QueryContext(ctx, query, roomID, before.CreatedAt, before.ID, limit)
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, limit)
	for rows.Next() {
		var m domain.Message
		if err = rows.Scan(&m.ID, &m.ChatRoomID, &m.UserID, &m.Body, &m.CreatedAt); err != nil {
			break
		}
		messages = append(messages, m)
	}
	if err == nil {
		err = rows.Err()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (p *Postgres) CreateOutbox(ctx context.Context, outbox domain.Outbox) error {
	const op = "postgres.CreateOutbox"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return storage.ErrInternal
	}

	query := fmt.Sprintf("INSERT INTO %s (key, topic, payload) VALUES ($1,$2,$3)", outboxTable)
	_, err = tx.ExecContext(ctx, query, outbox.Key, outbox.Topic, outbox.Payload)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) GetNextOutbox(ctx context.Context) (*domain.Outbox, error) {
	const op = "postgres.GetNextOutbox"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return nil, storage.ErrInternal
	}

	var outbox domain.Outbox

	query := fmt.Sprintf("SELECT id, key, topic, payload FROM %s WHERE sent_to_kafka IS NULL ORDER BY id LIMIT 1", outboxTable)
	row := tx.QueryRowContext(ctx, query)
	err = row.Scan(&outbox.ID, &outbox.Key, &outbox.Topic, &outbox.Payload)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoOutbox
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &outbox, nil
}

func (p *Postgres) ConfirmOutboxSent(ctx context.Context, id int64) error {
	const op = "postgres.ConfirmOutboxSent"
	log := p.log.With(slog.String("op", op))

	tx, closeTx, err := p.extractTx(ctx)
	if err != nil {
		log.Error("can't begin transaction", sl.Err(err))
		return storage.ErrInternal
	}

	query := fmt.Sprintf(`UPDATE %s SET sent_to_kafka = $1 WHERE id = $2`, outboxTable)
	_, err = tx.ExecContext(ctx, query, time.Now(), id)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	return nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		res = append(res, id.String())
	}
	return res
}

func stringsToUuids(ids []string) ([]uuid.UUID, error) {
	res := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}
