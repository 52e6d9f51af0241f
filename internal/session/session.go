package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/taazafoods/chatbot-backend/internal/cart"
)

// User is the profile captured when a session starts. Mobile is stored in
// normalized form, country code included.
type User struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// Session is one shopper's server-side state. It is owned exclusively by the
// Store; callers only ever see snapshots.
type Session struct {
	ID               string
	CreatedAt        time.Time
	User             User
	Cart             cart.Cart
	Categories       json.RawMessage
	SelectedCategory string

	mu    sync.Mutex
	timer *time.Timer
}

// Snapshot is an immutable copy of a session handed out to callers.
type Snapshot struct {
	ID               string          `json:"session_id"`
	CreatedAt        time.Time       `json:"created_at"`
	User             User            `json:"user"`
	Cart             cart.Cart       `json:"cart"`
	Categories       json.RawMessage `json:"-"`
	SelectedCategory string          `json:"-"`
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:               s.ID,
		CreatedAt:        s.CreatedAt,
		User:             s.User,
		Cart:             s.Cart.Clone(),
		Categories:       s.Categories,
		SelectedCategory: s.SelectedCategory,
	}
}
