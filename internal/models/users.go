package models

// GuestID identifica o dono anônimo de uma partida. Nunca é persistido como usuário.
const GuestID = "guest"

// registro do usuário no store
type User struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name,omitempty"`
	Games    []string `json:"games"`
}

// HasGame reports whether gameID is already attached to the user.
func (u User) HasGame(gameID string) bool {
	for _, g := range u.Games {
		if g == gameID {
			return true
		}
	}
	return false
}

// GuestUser builds the transient user returned for guest-owned games.
func GuestUser(gameID string) User {
	return User{
		UserID:   GuestID,
		Username: "Guest User",
		Email:    "guest@example.com",
		Games:    []string{gameID},
	}
}

type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	FullName string `json:"full_name" form:"full_name"`
}

type AddGameRequest struct {
	GameID string `json:"gameid" form:"gameid" binding:"required"`
}
