package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousName is shown for actors without a display name.
const AnonymousName = "Anonymous"

// User represents a registered application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Actor identifies the user performing a mutation.
type Actor struct {
	ID   uuid.UUID
	Name string
}

// DisplayName returns the actor's name, or AnonymousName when it is blank.
func (a Actor) DisplayName() string {
	if a.Name == "" {
		return AnonymousName
	}
	return a.Name
}
