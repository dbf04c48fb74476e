package models

// User represents a registered account. The Password field carries the bcrypt
// hash, never the plaintext.
type User struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	FavoriteBook *FavoriteBook `json:"favoriteBook"`
}

// FavoriteBook is the structured catalog record a user can pin on their
// profile. It round-trips through a JSON-encoded column in storage.
type FavoriteBook struct {
	Key              string   `json:"key" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	AuthorName       []string `json:"author_name" binding:"omitempty,dive,required"`
	FirstPublishYear *int     `json:"first_publish_year,omitempty"`
}

// UserPatch carries the fields a profile update may change. Nil means "leave
// as is". Password, when set, must already be hashed.
type UserPatch struct {
	Username     *string
	Password     *string
	FavoriteBook *FavoriteBook
}

// RegisterRequest defines the structure for a user registration request.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the structure for a user login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the structure for a profile update request.
// All fields are optional; supplied fields are validated.
type UpdateUserRequest struct {
	Username     *string       `json:"username" binding:"omitempty,min=3,max=20"`
	Password     *string       `json:"password" binding:"omitempty,min=8,max=72"`
	FavoriteBook *FavoriteBook `json:"favoriteBook" binding:"omitempty"`
}
