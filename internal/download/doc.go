package download

// Package download implements the batch download pipeline for Drive links:
// one goroutine per link sharing a batch-scoped HTTP session, each streaming
// its file to disk and emitting status events that a single owner applies.
