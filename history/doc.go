// Package history tracks bounded per-vault threat score timelines.
//
// A Store keeps the most recent snapshots for each vault, capped at a fixed
// length with ring-buffer semantics: once a vault's timeline is full, each
// append evicts the oldest entry. Timelines are returned oldest first.
//
// Two implementations are provided:
//
//   - MemoryStore: in-process storage with per-vault locking, the default
//     for a single engine instance.
//   - RedisStore: Redis-backed storage (RPUSH + LTRIM) for deployments where
//     score history must outlive the process or be shared across instances.
//
// Appends for different vaults never block each other; appends for the same
// vault are serialized by the caller (the engine holds a per-vault critical
// section around its read-compute-append sequence).
package history
