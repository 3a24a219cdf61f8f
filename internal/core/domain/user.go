package domain

import "time"

const (
	UserInactive = 0
	UserActive   = 1
)

// User is a system user. Values are copied, never mutated in place; use the
// With* functions to derive an updated record.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     *string    `json:"email,omitempty"`
	Password  string     `json:"password,omitempty"`
	IsActive  int        `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UserSummary is the projection returned by list queries.
type UserSummary struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     *string    `json:"email,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// NewUser builds an active user that has not been persisted yet.
func NewUser(username string, email *string, password string) User {
	return User{
		Username: username,
		Email:    email,
		Password: password,
		IsActive: UserActive,
	}
}

func (u User) WithID(id int64) User {
	u.ID = id
	return u
}

func (u User) WithPassword(hash string) User {
	u.Password = hash
	return u
}

func (u User) WithCreatedAt(t time.Time) User {
	u.CreatedAt = t
	return u
}

func (u User) WithLastLogin(t time.Time) User {
	u.LastLogin = &t
	return u
}

func (u User) WithActive(flag int) User {
	u.IsActive = flag
	return u
}

// Summary projects u onto the list columns.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		LastLogin: u.LastLogin,
	}
}
