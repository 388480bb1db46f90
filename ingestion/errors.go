package ingestion

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrNoRecords is returned when a bulk load is attempted with no records.
	ErrNoRecords = errors.New("no records to load")
)
