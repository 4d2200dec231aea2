package service

import "errors"

var (
	// ErrNotFound is returned when a tenant asks for a record it does not own
	// or that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrArchiveDisabled is returned by archive operations when no object
	// storage is configured.
	ErrArchiveDisabled = errors.New("archive is disabled")
	// ErrUnsupportedType is returned when archiving a contract type that has
	// no composer.
	ErrUnsupportedType = errors.New("unsupported contract type")
	// ErrInvalidQuote is returned for a budget request that cannot be priced.
	ErrInvalidQuote = errors.New("invalid quote")
)
