package domain

// CreateSessionRequest is the body of POST /api/chat/session.
type CreateSessionRequest struct {
	Name string `json:"name"`
	// Username is accepted as an alias for Name.
	Username string `json:"username,omitempty"`
}

// DisplayName returns Name, or Username when Name is empty.
func (r CreateSessionRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Username
}

// SendMessageRequest is the body of POST /api/chat/message.
type SendMessageRequest struct {
	SessionID int64  `json:"sessionId"`
	Content   string `json:"content"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
