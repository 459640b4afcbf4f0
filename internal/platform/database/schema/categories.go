// Copyright (c) 2026 Meeple. All rights reserved.

// Package schema defines table and column name constants for the relational
// store. Query builders reference these instead of string literals so that a
// column can only ever enter a query through a fixed, compiler-checked name.
package schema

// CategoriesTable represents the 'categories' table
type CategoriesTable struct {
	Table       string
	Slug        string
	Description string
}

// Categories is the schema definition for categories
var Categories = CategoriesTable{
	Table:       "categories",
	Slug:        "slug",
	Description: "description",
}
