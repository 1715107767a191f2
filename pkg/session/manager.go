// Package session keeps short-lived flash messages between a mutating request
// and the next page load. Sessions are in-memory with a bounded lifetime and
// are swept periodically, so an abandoned browser never pins server memory.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "session_id"

type sessionData struct {
	message  string
	errorMsg string
	expires  time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*sessionData
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{sessions: make(map[string]*sessionData), ttl: ttl}
}

// StartJanitor sweeps expired sessions every interval until stop is closed.
func (m *Manager) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

func (m *Manager) Sweep() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.After(s.expires) {
			delete(m.sessions, id)
		}
	}
}

// Middleware ensures every request carries a session cookie.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				id := uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				c.Set(CookieName, id)
			} else {
				c.Set(CookieName, cookie.Value)
			}
			return next(c)
		}
	}
}

func sessionID(c echo.Context) string {
	if v, ok := c.Get(CookieName).(string); ok {
		return v
	}
	return ""
}

func (m *Manager) get(id string, create bool) *sessionData {
	s, ok := m.sessions[id]
	if !ok {
		if !create {
			return nil
		}
		s = &sessionData{}
		m.sessions[id] = s
	}
	s.expires = time.Now().Add(m.ttl)
	return s
}

func (m *Manager) SetMessage(c echo.Context, msg string) {
	id := sessionID(c)
	if id == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id, true).message = msg
}

func (m *Manager) SetError(c echo.Context, msg string) {
	id := sessionID(c)
	if id == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id, true).errorMsg = msg
}

// PopMessage returns the pending flash message and clears it.
func (m *Manager) PopMessage(c echo.Context) string {
	id := sessionID(c)
	if id == "" {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(id, false)
	if s == nil {
		return ""
	}
	msg := s.message
	s.message = ""
	return msg
}

// PopError returns the pending flash error and clears it.
func (m *Manager) PopError(c echo.Context) string {
	id := sessionID(c)
	if id == "" {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(id, false)
	if s == nil {
		return ""
	}
	msg := s.errorMsg
	s.errorMsg = ""
	return msg
}

// Len reports live session count, expired entries included until swept.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
