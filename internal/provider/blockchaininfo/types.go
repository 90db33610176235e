package blockchaininfo

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for provider calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// HTTPDoer sends HTTP requests.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)
