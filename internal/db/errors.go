package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrToolTypeNotFound signals a query that succeeded but matched no
	// record. Callers rely on it being distinct from transport failures,
	// which are returned wrapped instead.
	ErrToolTypeNotFound = errors.New("tool type not found")
)
