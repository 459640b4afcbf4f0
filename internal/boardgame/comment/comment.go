// Copyright (c) 2026 Meeple. All rights reserved.

// Package comment serves the comment threads attached to reviews.
package comment

import "time"

// Comment is a reply attached to a review. Comments are created and deleted
// through the API but never updated.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	ReviewID  int       `json:"review_id"`
	CreatedAt time.Time `json:"created_at"`
}
