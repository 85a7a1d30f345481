package dto

import "finboard/internal/highlight"

type CreateLookupRequest struct {
	Name       string  `json:"name" validate:"required"`
	CategoryID *string `json:"category_id,omitempty"`
}

type LookupResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID *string `json:"category_id,omitempty"`
	CreatedAt  string  `json:"created_at"`

	// Spans segments Name against the search term when one was given.
	// A single unmatched span means the row did not match.
	Spans []highlight.Span `json:"spans,omitempty"`
}
