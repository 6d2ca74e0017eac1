package ports

import "go.trai.ch/ferry/internal/core/domain"

// ExchangeLedger defines the interface for recording completed artifact transfers.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExchangeLedger interface {
	// Get retrieves the record stored under id.
	// Returns nil, nil if not found.
	Get(id string) (*domain.ExchangeRecord, error)

	// Put stores the record, replacing any record with the same ID.
	Put(record domain.ExchangeRecord) error
}
