package models

import "time"

// Identity points at the authenticated user, abstracted from any particular
// auth provider. A nil *Identity means "no user" (logged out or not yet
// resolved).
type Identity struct {
	Key   string `json:"key"` // stable unique owner key for cloud documents
	Email string `json:"email"`
}

// Account is a registered credential pair held by the identity provider.
// The secret hash never leaves the provider.
type Account struct {
	Key        string    `json:"key"`
	Email      string    `json:"email"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Identity returns the identity reference for this account.
func (a Account) Identity() *Identity {
	return &Identity{Key: a.Key, Email: a.Email}
}
