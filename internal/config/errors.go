package config

import "errors"

var (
	ErrNoBaseURL = errors.New("story API base URL is not configured")
	ErrNoDBPath  = errors.New("local database path is not configured")
)
