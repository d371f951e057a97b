package handlers

import (
	"cryptowallet/internal/models"
	"cryptowallet/internal/session"
)

// SessionManager is the slice of the session registry the handlers need.
type SessionManager interface {
	Create(user models.User) *session.Session
	Get(id string) (*session.Session, bool)
	Destroy(id string)
}
