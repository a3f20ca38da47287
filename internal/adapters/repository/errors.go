// Package repository defines the ranked result store interface and errors.
package repository

import "errors"

// Sentinel kinds for ranking store errors.
var (
	ErrNotFound     = errors.New("listing not found")
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
