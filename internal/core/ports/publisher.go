package ports

import "context"

// Publisher builds the distributable package and uploads it to the package index.
//
//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	Publish(ctx context.Context) error
}
