// Copyright (c) 2026 Meeple. All rights reserved.

package api

import (
	"net/http"

	"github.com/boardhaus/meeple/internal/platform/constants"
	"github.com/boardhaus/meeple/internal/platform/respond"
)

// endpointDoc describes one API route for the self-documenting GET /api listing.
type endpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	BodyFields  []string `json:"body_fields,omitempty"`
}

// endpointCatalogue is the static description of every public route.
var endpointCatalogue = map[string]endpointDoc{
	"GET /api": {
		Description: "Serves a JSON representation of all the available endpoints of the API",
	},
	"GET /api/categories": {
		Description: "Serves an array of all categories",
	},
	"GET /api/users": {
		Description: "Serves an array of all users",
	},
	"GET /api/reviews": {
		Description: "Serves an array of all reviews with their comment counts",
		Queries:     []string{"sort_by", "order", "category"},
	},
	"GET /api/reviews/:review_id": {
		Description: "Serves the review with the given id, including its comment count",
	},
	"PATCH /api/reviews/:review_id": {
		Description: "Applies a signed vote delta to the review and serves the updated row",
		BodyFields:  []string{"inc_votes"},
	},
	"GET /api/reviews/:review_id/comments": {
		Description: "Serves an array of all comments on the given review",
	},
	"POST /api/reviews/:review_id/comments": {
		Description: "Creates a comment on the given review and serves the new row",
		BodyFields:  []string{"username", "body"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "Deletes the comment with the given id",
	},
}

// listEndpoints handles GET /api.
func listEndpoints(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, respond.Envelope{constants.FieldEndpoints: endpointCatalogue})
}
