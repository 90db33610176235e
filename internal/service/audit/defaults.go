package audit

import "time"

const (
	addressDelay = 5 * time.Second
)
