package domain

import "errors"

var (
	// ErrMissingCredential indicates a required API key is absent.
	// Reported at startup, before any query is accepted.
	ErrMissingCredential = errors.New("missing credential")

	// ErrEmptyCorpus indicates no documents survived ingestion.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrIndexNotReady indicates a query arrived before a successful build.
	ErrIndexNotReady = errors.New("index not ready")

	// ErrInvalidInput indicates text unsuitable for embedding.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service failed.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrGenerationUnavailable indicates the completion service failed.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrServiceUnavailable indicates a tool upstream could not be reached
	// or rejected our credentials.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrNotFound indicates a valid request with no matching result.
	ErrNotFound = errors.New("not found")

	// ErrMissingParameters indicates routing could not extract the fields
	// a tool intent requires.
	ErrMissingParameters = errors.New("missing parameters")
)
