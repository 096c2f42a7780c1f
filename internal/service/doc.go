// Package service contains the memo sheet generation use case.
//
// It orchestrates the pipeline that turns form input into a memo sheet:
// input normalization (internal/normalize), prompt construction
// (internal/prompt), text generation through a generation.Generator, and
// Markdown rendering. Dependencies are received through constructor
// injection so the delivery mechanisms (HTTP API, CLI) and the tests can
// supply their own implementations.
//
// Error handling:
//   - Validation failures return domain sentinel errors (domain.ErrEmptySubject)
//   - File read failures wrap normalize.ErrFileRead
//   - Generation failures wrap the sentinels from internal/generation
//   - Unexpected failures are wrapped in MemoFicheServiceError
//
// Callers use errors.Is/errors.As to check for specific conditions. The API
// layer maps them to HTTP status codes.
package service
