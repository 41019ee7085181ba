// Package store provides file-based persistence for the signing identity
// used by the sign subcommands.
//
// The chat core keeps nothing on disk; only the long-term Ed25519 signing key
// is stored, serialised as JSON and sealed under a passphrase-derived key.
// All methods are concurrency-safe via internal locking, and files are
// replaced atomically.
package store
