package report

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Sink stores an encoded report under the address it belongs to.
type Sink interface {
	Put(ctx context.Context, key string, value []byte) error
}
