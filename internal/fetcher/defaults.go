package fetcher

import "time"

const (
	// PageSize is the number of transactions the provider returns per page.
	PageSize = 100
	// DefaultRetryDelay is the pause between failed page requests.
	DefaultRetryDelay = 5 * time.Second
)
