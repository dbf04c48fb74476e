package models

import "time"

// Post is an authored entry. AuthorID is set from the authenticated session
// at creation and never changes afterwards.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostPatch carries the fields a post update may change. Nil means "leave
// as is".
type PostPatch struct {
	Title   *string
	Content *string
}

// PostRequest defines the structure for post create and update requests.
type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
