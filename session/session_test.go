package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticketing-webapp/model"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())

	s.Begin("jwt-token", 5, "Ada", model.RoleAdmin)

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "jwt-token", s.Token())
	assert.Equal(t, int64(5), s.UserId())
	assert.Equal(t, "Ada", s.Name())
	assert.True(t, s.IsAdmin())
	assert.False(t, s.IsCustomer())

	s.Clear()

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())
	assert.Zero(t, s.UserId())
	assert.False(t, s.IsAdmin())
}

func TestClearOnEmptySession(t *testing.T) {
	s := New()
	s.Clear()
	assert.False(t, s.LoggedIn())
}
