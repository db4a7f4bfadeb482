package service

import "errors"

var (
	// ErrOffline is returned by operations that require network reachability
	// and have no offline branch.
	ErrOffline = errors.New("network is offline")
)
