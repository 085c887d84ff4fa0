package models

import "time"

// Resolution outcome constants
const (
	OutcomeResolved    = "resolved"
	OutcomeNotFound    = "not_found"
	OutcomeStoreError  = "store_error"
	OutcomeNoResults   = "no_results"
	OutcomeUpstream    = "upstream_error"
	OutcomeUnsupported = "unsupported"
)

// ResolutionStat represents a per-slug resolution count by outcome.
type ResolutionStat struct {
	Slug       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
