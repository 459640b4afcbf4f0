// Copyright (c) 2026 Meeple. All rights reserved.

package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	Author    string
	Body      string
	Votes     string
	ReviewID  string
	CreatedAt string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "comment_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	ReviewID:  "review_id",
	CreatedAt: "created_at",
}
