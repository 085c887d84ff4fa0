package pipeline

// Kind classifies a resolution failure for logging and metrics.
// Kinds are never shown to end users.
type Kind string

// Failure kinds, one per stage-local failure class.
const (
	KindNotFound         Kind = "not_found"
	KindStoreUnavailable Kind = "store_unavailable"
	KindNoResults        Kind = "no_results"
	KindUpstream         Kind = "upstream_unavailable"
	KindUnsupported      Kind = "unsupported_input"
)

// ResolutionError is the pipeline's single failure type. Message is always
// a well-formed, user-presentable string; Kind carries the diagnostic class.
type ResolutionError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the user-facing message, with the underlying cause appended
// when one exists.
func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying stage error for errors.Is chains.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Outcome returns the stats/metrics outcome label for this failure.
func (e *ResolutionError) Outcome() string {
	switch e.Kind {
	case KindNotFound:
		return "not_found"
	case KindStoreUnavailable:
		return "store_error"
	case KindNoResults:
		return "no_results"
	case KindUpstream:
		return "upstream_error"
	case KindUnsupported:
		return "unsupported"
	default:
		return string(e.Kind)
	}
}
