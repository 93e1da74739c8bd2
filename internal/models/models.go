package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	AvatarURL              string    `json:"avatarUrl" db:"avatar_url"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	FollowID    string    `json:"id" db:"follow_id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Post is authored by SenderID and addressed to RecipientID's timeline.
// RecipientID equals SenderID for a self-post.
type Post struct {
	PostID      string    `json:"id" db:"post_id"`
	SenderID    string    `json:"senderId" db:"sender_id"`
	RecipientID string    `json:"recipientId" db:"recipient_id"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type DirectMessage struct {
	MessageID   string    `json:"id" db:"message_id"`
	SenderID    string    `json:"senderId" db:"sender_id"`
	RecipientID string    `json:"recipientId" db:"recipient_id"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	IsRead      bool      `json:"isRead" db:"is_read"`
}

// PostView is the response projection shared by wall, timeline and conversation.
type PostView struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewPostView(p Post) PostView {
	return PostView{
		ID:          p.PostID,
		SenderID:    p.SenderID,
		RecipientID: p.RecipientID,
		Message:     p.Message,
		CreatedAt:   p.CreatedAt,
	}
}

type Stats struct {
	Users          int `json:"users" db:"users"`
	Follows        int `json:"follows" db:"follows"`
	Posts          int `json:"posts" db:"posts"`
	DirectMessages int `json:"directMessages" db:"direct_messages"`
}
