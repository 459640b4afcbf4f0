// Copyright (c) 2026 Meeple. All rights reserved.

// Package category serves the read-only board-game category catalogue.
package category

// Category is a board-game genre/tag. Rows are seeded once and immutable
// from the API's perspective.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
