package usecase

import "time"

const (
	// DefaultTargetCurrency is used when a report request names none.
	DefaultTargetCurrency = "EUR"

	// DefaultReportCacheTTL bounds how long a cached report snapshot
	// may be served before recomputing.
	DefaultReportCacheTTL = 5 * time.Minute
)
