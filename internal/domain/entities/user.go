package entities

import "time"

// User represents a bot player and their running score.
type User struct {
	ID        int64 // Telegram user ID
	Username  string
	FirstName string
	Wins      int
	Losses    int
	CreatedAt time.Time
}

func NewUser(id int64, username, firstName string) *User {
	return &User{
		ID:        id,
		Username:  username,
		FirstName: firstName,
	}
}

// DisplayName returns the best available name for leaderboard rendering.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return "Unknown"
}
