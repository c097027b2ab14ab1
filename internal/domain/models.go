// Package domain defines the core domain models for the concierge service.
package domain

import "time"

// User is a registered visitor identity.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// Password holds the bcrypt hash and is never serialized.
	Password string `json:"-"`
}

// ChatSession groups the messages of one conversation.
type ChatSession struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is one utterance within a session.
type Message struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"sessionId"`
	Content     string    `json:"content"`
	IsAssistant bool      `json:"isAssistant"`
	Timestamp   time.Time `json:"timestamp"`
}

// Exchange is the pair of messages stored for one visitor turn.
type Exchange struct {
	UserMessage      Message `json:"userMessage"`
	AssistantMessage Message `json:"assistantMessage"`
}
