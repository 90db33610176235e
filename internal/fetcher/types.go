package fetcher

import (
	"context"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PageClient requests a single page of address transactions from the provider.
	PageClient interface {
		FetchPage(ctx context.Context, address string, offset int) (*model.AddressPage, []byte, error)
	}
	// Cache persists full fetch results keyed by address.
	Cache interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Put(ctx context.Context, key string, value []byte) error
	}
	// Metrics records fetcher activity.
	Metrics interface {
		ObserveCache(hit bool)
		ObserveRetry()
		ObservePage()
	}
)
