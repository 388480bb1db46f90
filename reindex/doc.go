// Package reindex provides functionality for re-embedding stored profiles
// with a new or updated embedding model.
//
// This package supports batch processing of profiles, progress tracking,
// retry logic with exponential backoff, and an atomic swap of the in-memory
// vector index once all fresh vectors are persisted.
package reindex
