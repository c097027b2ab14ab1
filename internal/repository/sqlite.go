package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store and applies the schema.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer. In-memory databases also give each connection
	// its own database, and a shared cache fails overlapping statements with
	// SQLITE_LOCKED instead of waiting. A single connection serializes access.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chat_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_sessions_username ON chat_sessions(username)`,
		// session_id is not a foreign key: messages may reference any session id.
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			is_ai BOOLEAN NOT NULL DEFAULT 0,
			timestamp DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, timestamp, id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUser inserts a user. A duplicate username yields *domain.ConflictError.
func (s *SQLiteStore) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, password)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Resource: "user", Key: username}
		}
		return nil, storageErr("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("create user", err)
	}
	return &domain.User{ID: id, Username: username, Password: password}, nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = ?`, id))
}

// GetUserByName retrieves a user by username.
func (s *SQLiteStore) GetUserByName(ctx context.Context, username string) (*domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ?`, username))
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

// CreateChatSession creates a new session.
func (s *SQLiteStore) CreateChatSession(ctx context.Context, name string) (*domain.ChatSession, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (username, created_at) VALUES (?, ?)`,
		name, now)
	if err != nil {
		return nil, storageErr("create session", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("create session", err)
	}
	return &domain.ChatSession{ID: id, Name: name, CreatedAt: now}, nil
}

// GetChatSession retrieves a session by ID.
func (s *SQLiteStore) GetChatSession(ctx context.Context, id int64) (*domain.ChatSession, error) {
	var session domain.ChatSession
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM chat_sessions WHERE id = ?`,
		id).Scan(&session.ID, &session.Name, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get session", err)
	}
	return &session, nil
}

// GetSessionsByName lists the sessions opened under a display name.
func (s *SQLiteStore) GetSessionsByName(ctx context.Context, name string) ([]domain.ChatSession, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, created_at FROM chat_sessions WHERE username = ? ORDER BY id ASC`,
		name)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	defer rows.Close()

	sessions := []domain.ChatSession{}
	for rows.Next() {
		var session domain.ChatSession
		if err := rows.Scan(&session.ID, &session.Name, &session.CreatedAt); err != nil {
			return nil, storageErr("list sessions", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list sessions", err)
	}
	return sessions, nil
}

// CreateMessage creates a new message.
func (s *SQLiteStore) CreateMessage(ctx context.Context, sessionID int64, content string, isAssistant bool) (*domain.Message, error) {
	if err := validateMessage(content); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, content, is_ai, timestamp) VALUES (?, ?, ?, ?)`,
		sessionID, content, isAssistant, now)
	if err != nil {
		return nil, storageErr("create message", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("create message", err)
	}
	return &domain.Message{
		ID:          id,
		SessionID:   sessionID,
		Content:     content,
		IsAssistant: isAssistant,
		Timestamp:   now,
	}, nil
}

// GetMessagesBySession retrieves messages for a session, oldest first.
func (s *SQLiteStore) GetMessagesBySession(ctx context.Context, sessionID int64) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, content, is_ai, timestamp FROM messages WHERE session_id = ? ORDER BY timestamp ASC, id ASC`,
		sessionID)
	if err != nil {
		return nil, storageErr("list messages", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Content, &msg.IsAssistant, &msg.Timestamp); err != nil {
			return nil, storageErr("list messages", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list messages", err)
	}
	return messages, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
