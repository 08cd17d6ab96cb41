package storage

import (
	"context"
	"time"

	"github.com/iudanet/paclead/pkg/api"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the client session.
// Holds a single active session: bearer token plus the current user.
type SessionStorage interface {
	// SaveSession replaces the stored session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession returns the stored session
	// Returns ErrSessionNotFound if nothing is stored
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	// Deleting a missing session is not an error
	DeleteSession(ctx context.Context) error
}

// SessionData represents the persisted session
type SessionData struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
	User    api.User  `json:"user"`
}
