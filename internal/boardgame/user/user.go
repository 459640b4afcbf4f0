// Copyright (c) 2026 Meeple. All rights reserved.

// Package user serves the read-only platform user directory.
package user

// User is a registered reviewer/commenter. Rows are seeded once and
// immutable from the API's perspective.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
