package domain

import (
	"errors"
	"time"
)

var ErrAlreadyBookmarked = errors.New("already bookmarked")

// Bookmark links a user to a scholarship. It carries no identity of its own:
// the (UserID, ScholarshipID) pair is unique and both sides are foreign keys,
// so a bookmark never outlives either referenced row.
type Bookmark struct {
	UserID        int64     `json:"user_id"`
	ScholarshipID int64     `json:"scholarship_id"`
	CreatedAt     time.Time `json:"created_at"`
}
