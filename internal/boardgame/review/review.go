// Copyright (c) 2026 Meeple. All rights reserved.

// Package review serves the board-game review catalogue: listing with
// dynamic sort/filter, lookup by id, and vote adjustment.
package review

import "time"

// Review is a board-game write-up, the central entity of the catalogue.
//
// CommentCount is a derived aggregate computed at query time; it is nil on
// paths that do not aggregate (the vote PATCH) and omitted from their JSON.
type Review struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	Designer     string    `json:"designer"`
	Owner        string    `json:"owner"`
	ReviewImgURL string    `json:"review_img_url"`
	ReviewBody   string    `json:"review_body"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount *int      `json:"comment_count,omitempty"`
}
