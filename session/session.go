// Package session holds the current user identity for the lifetime of a
// login. It replaces ad-hoc reads of ambient storage: one Session is
// constructed at startup, injected into the client and every view, begun on
// login and cleared on logout.
package session

import (
	"sync"

	"ticketing-webapp/model"
)

type Session struct {
	mu       sync.RWMutex
	token    string
	userId   int64
	name     string
	role     string
	loggedIn bool
}

func New() *Session {
	return &Session{}
}

// Begin records a successful login.
func (s *Session) Begin(token string, userId int64, name, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userId = userId
	s.name = name
	s.role = role
	s.loggedIn = true
}

// Clear wipes the session on logout. Safe to call on an empty session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userId = 0
	s.name = ""
	s.role = ""
	s.loggedIn = false
}

// Token implements client.TokenSource. Empty until Begin is called.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserId() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userId
}

func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Session) IsAdmin() bool {
	return s.Role() == model.RoleAdmin
}

func (s *Session) IsOrganizer() bool {
	return s.Role() == model.RoleOrganizer
}

func (s *Session) IsCustomer() bool {
	return s.Role() == model.RoleCustomer
}
