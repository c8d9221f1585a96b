package models

// AuthResponse is returned by the register and login endpoints.
// The same token is duplicated in the Authorization response header.
type AuthResponse struct {
	// Token is the compact JWS string the client presents on
	// subsequent requests.
	Token string `json:"token"`

	// User is the authenticated account, without credential fields.
	User User `json:"user"`
}

// ListNotesResponse wraps a page of notes.
type ListNotesResponse struct {
	// Notes is the page content, newest first.
	Notes []Note `json:"notes"`

	// Length is the number of entries in Notes.
	// Provided for convenience so the client can pre-allocate
	// or validate the response without iterating the slice.
	Length int `json:"length"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
