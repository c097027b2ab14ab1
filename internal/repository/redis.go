package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// RedisStore implements Store on a Redis server.
//
// Key layout, all under a common prefix:
//
//	<p>:seq:{user,session,message}  id counters (INCR)
//	<p>:user:<id>                   user JSON
//	<p>:user:name:<username>        user id, written under WATCH with the record
//	<p>:session:<id>                session JSON
//	<p>:session:name:<name>         list of session ids
//	<p>:session:<id>:messages       sorted set of message JSON, scored by id
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

type userRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewRedisStore wraps an existing client. The connection is checked with PING.
func NewRedisStore(ctx context.Context, rdb *redis.Client, prefix string) (*RedisStore, error) {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (r *RedisStore) key(parts ...string) string {
	k := r.prefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

func (r *RedisStore) nextID(ctx context.Context, kind string) (int64, error) {
	return r.rdb.Incr(ctx, r.key("seq", kind)).Result()
}

var errNameTaken = errors.New("name taken")

// CreateUser writes the username reservation and the record in one
// transaction, so a failed write leaves neither behind.
func (r *RedisStore) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	id, err := r.nextID(ctx, "user")
	if err != nil {
		return nil, storageErr("create user", err)
	}
	raw, err := json.Marshal(userRecord{ID: id, Username: username, Password: password})
	if err != nil {
		return nil, storageErr("create user", err)
	}

	nameKey := r.key("user", "name", username)
	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, nameKey).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errNameTaken
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, nameKey, id, 0)
			pipe.Set(ctx, r.key("user", strconv.FormatInt(id, 10)), raw, 0)
			return nil
		})
		return err
	}, nameKey)
	switch {
	case errors.Is(err, errNameTaken), errors.Is(err, redis.TxFailedErr):
		// TxFailedErr means another writer touched the name key first.
		return nil, &domain.ConflictError{Resource: "user", Key: username}
	case err != nil:
		return nil, storageErr("create user", err)
	}
	return &domain.User{ID: id, Username: username, Password: password}, nil
}

func (r *RedisStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	raw, err := r.rdb.Get(ctx, r.key("user", strconv.FormatInt(id, 10))).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	var rec userRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, storageErr("get user", err)
	}
	return &domain.User{ID: rec.ID, Username: rec.Username, Password: rec.Password}, nil
}

func (r *RedisStore) GetUserByName(ctx context.Context, username string) (*domain.User, error) {
	id, err := r.rdb.Get(ctx, r.key("user", "name", username)).Int64()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return r.GetUser(ctx, id)
}

func (r *RedisStore) CreateChatSession(ctx context.Context, name string) (*domain.ChatSession, error) {
	id, err := r.nextID(ctx, "session")
	if err != nil {
		return nil, storageErr("create session", err)
	}
	session := domain.ChatSession{ID: id, Name: name, CreatedAt: time.Now().UTC()}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, storageErr("create session", err)
	}

	idStr := strconv.FormatInt(id, 10)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key("session", idStr), raw, 0)
		pipe.RPush(ctx, r.key("session", "name", name), idStr)
		return nil
	})
	if err != nil {
		return nil, storageErr("create session", err)
	}
	return &session, nil
}

func (r *RedisStore) GetChatSession(ctx context.Context, id int64) (*domain.ChatSession, error) {
	raw, err := r.rdb.Get(ctx, r.key("session", strconv.FormatInt(id, 10))).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get session", err)
	}
	var session domain.ChatSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, storageErr("get session", err)
	}
	return &session, nil
}

func (r *RedisStore) GetSessionsByName(ctx context.Context, name string) ([]domain.ChatSession, error) {
	ids, err := r.rdb.LRange(ctx, r.key("session", "name", name), 0, -1).Result()
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	sessions := []domain.ChatSession{}
	if len(ids) == 0 {
		return sessions, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key("session", id)
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var session domain.ChatSession
		if err := json.Unmarshal([]byte(s), &session); err != nil {
			return nil, storageErr("list sessions", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *RedisStore) CreateMessage(ctx context.Context, sessionID int64, content string, isAssistant bool) (*domain.Message, error) {
	if err := validateMessage(content); err != nil {
		return nil, err
	}
	id, err := r.nextID(ctx, "message")
	if err != nil {
		return nil, storageErr("create message", err)
	}
	msg := domain.Message{
		ID:          id,
		SessionID:   sessionID,
		Content:     content,
		IsAssistant: isAssistant,
		Timestamp:   time.Now().UTC(),
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, storageErr("create message", err)
	}
	err = r.rdb.ZAdd(ctx, r.messagesKey(sessionID), redis.Z{Score: float64(id), Member: raw}).Err()
	if err != nil {
		return nil, storageErr("create message", err)
	}
	return &msg, nil
}

func (r *RedisStore) GetMessagesBySession(ctx context.Context, sessionID int64) ([]domain.Message, error) {
	members, err := r.rdb.ZRange(ctx, r.messagesKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, storageErr("list messages", err)
	}
	messages := make([]domain.Message, 0, len(members))
	for _, m := range members {
		var msg domain.Message
		if err := json.Unmarshal([]byte(m), &msg); err != nil {
			return nil, storageErr("list messages", err)
		}
		messages = append(messages, msg)
	}
	sortMessages(messages)
	return messages, nil
}

func (r *RedisStore) messagesKey(sessionID int64) string {
	return r.key("session", strconv.FormatInt(sessionID, 10), "messages")
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
