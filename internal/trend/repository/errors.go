package repository

import "errors"

var (
	// ErrCacheMiss - key not present or expired
	ErrCacheMiss = errors.New("trend repository: cache miss")
)
