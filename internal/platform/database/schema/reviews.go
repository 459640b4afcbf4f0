// Copyright (c) 2026 Meeple. All rights reserved.

package schema

// ReviewsTable represents the 'reviews' table
type ReviewsTable struct {
	Table        string
	ID           string
	Title        string
	Designer     string
	Owner        string
	ReviewImgURL string
	ReviewBody   string
	Category     string
	CreatedAt    string
	Votes        string
}

// Reviews is the schema definition for reviews
var Reviews = ReviewsTable{
	Table:        "reviews",
	ID:           "review_id",
	Title:        "title",
	Designer:     "designer",
	Owner:        "owner",
	ReviewImgURL: "review_img_url",
	ReviewBody:   "review_body",
	Category:     "category",
	CreatedAt:    "created_at",
	Votes:        "votes",
}
