package models

// APIResponse is the envelope every story API endpoint returns.
type APIResponse struct {
	// Error is true when the server rejected the request.
	Error bool `json:"error"`

	// Message is a human-readable status description.
	Message string `json:"message"`
}

// StoryListResponse is the payload of the list-stories endpoint.
type StoryListResponse struct {
	APIResponse

	// ListStory holds the stories returned by the server.
	ListStory []Story `json:"listStory"`
}

// RegisterRequest carries new-user registration credentials.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the authenticated identity returned on successful login.
type LoginResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// LoginResponse is the payload of the login endpoint.
type LoginResponse struct {
	APIResponse

	LoginResult LoginResult `json:"loginResult"`
}
