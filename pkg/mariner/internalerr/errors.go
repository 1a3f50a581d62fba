package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnknownPriority     = errors.New("unknown priority")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
