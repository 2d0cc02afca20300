package repository

import "errors"

var (
	// ErrCacheMiss - key not present or expired
	ErrCacheMiss = errors.New("analysis repository: cache miss")

	// ErrNotFound - record does not exist
	ErrNotFound = errors.New("analysis repository: record not found")
)
