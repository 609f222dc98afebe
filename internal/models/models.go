package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Login                  string    `json:"login" db:"login"`
	Username               string    `json:"username" db:"username"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Points                 int       `json:"points" db:"points"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID         string    `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	ImageURL       *string   `json:"imageUrl" db:"image_url"`
	Likes          []string  `json:"likes" db:"-"`
	Dislikes       []string  `json:"dislikes" db:"-"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	CommentID      string    `json:"commentId" db:"comment_id"`
	PostID         string    `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	Content        string    `json:"content" db:"content"`
	Likes          []string  `json:"likes" db:"-"`
	Dislikes       []string  `json:"dislikes" db:"-"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// EntityKind - вид сущности, на которую можно поставить реакцию
type EntityKind string

const (
	KindPost    EntityKind = "post"
	KindComment EntityKind = "comment"
)

// ReactionKind - вид реакции
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ReactionResult - состояние сущности после операции с реакцией
type ReactionResult struct {
	Likes        []string `json:"likes"`
	Dislikes     []string `json:"dislikes"`
	AuthorPoints int      `json:"authorPoints"`
}
