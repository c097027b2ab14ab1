package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// MemoryStore implements Store in process memory. Data is lost on exit.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[int64]domain.User
	userByName  map[string]int64
	sessions    map[int64]domain.ChatSession
	messages    map[int64][]domain.Message
	nextUser    int64
	nextSession int64
	nextMessage int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int64]domain.User),
		userByName: make(map[string]int64),
		sessions:   make(map[int64]domain.ChatSession),
		messages:   make(map[int64][]domain.Message),
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, username, password string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userByName[username]; ok {
		return nil, &domain.ConflictError{Resource: "user", Key: username}
	}
	m.nextUser++
	user := domain.User{ID: m.nextUser, Username: username, Password: password}
	m.users[user.ID] = user
	m.userByName[username] = user.ID
	return &user, nil
}

func (m *MemoryStore) GetUser(_ context.Context, id int64) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MemoryStore) GetUserByName(_ context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.userByName[username]
	if !ok {
		return nil, nil
	}
	user := m.users[id]
	return &user, nil
}

func (m *MemoryStore) CreateChatSession(_ context.Context, name string) (*domain.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSession++
	session := domain.ChatSession{ID: m.nextSession, Name: name, CreatedAt: time.Now().UTC()}
	m.sessions[session.ID] = session
	return &session, nil
}

func (m *MemoryStore) GetChatSession(_ context.Context, id int64) (*domain.ChatSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *MemoryStore) GetSessionsByName(_ context.Context, name string) ([]domain.ChatSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := []domain.ChatSession{}
	for _, session := range m.sessions {
		if session.Name == name {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions, nil
}

func (m *MemoryStore) CreateMessage(_ context.Context, sessionID int64, content string, isAssistant bool) (*domain.Message, error) {
	if err := validateMessage(content); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextMessage++
	msg := domain.Message{
		ID:          m.nextMessage,
		SessionID:   sessionID,
		Content:     content,
		IsAssistant: isAssistant,
		Timestamp:   time.Now().UTC(),
	}
	m.messages[sessionID] = append(m.messages[sessionID], msg)
	return &msg, nil
}

func (m *MemoryStore) GetMessagesBySession(_ context.Context, sessionID int64) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]domain.Message, len(m.messages[sessionID]))
	copy(messages, m.messages[sessionID])
	sortMessages(messages)
	return messages, nil
}

func (m *MemoryStore) Close() error { return nil }

// sortMessages orders by timestamp, then by id for equal timestamps.
func sortMessages(messages []domain.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if !messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Timestamp.Before(messages[j].Timestamp)
		}
		return messages[i].ID < messages[j].ID
	})
}
