package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity or SQL template does not exist
// - ErrInvalidPath: template lookup attempted to escape the template base directory
// - ErrQueryFailed: legacy transport failed to execute a query
// - ErrUnavailable: backing service temporarily unavailable
// - ErrAlreadyUsed: unique value (e.g. account email) already taken
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidPath = errors.New("invalid path")
	ErrQueryFailed = errors.New("query execution failed")
	ErrUnavailable = errors.New("unavailable")
	ErrAlreadyUsed = errors.New("already used")
)
