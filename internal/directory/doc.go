// Package directory is the trusted key server stand-in: an in-memory map from
// participant identities to their key-agreement public keys.
//
// Lookups for identities that were never registered, or that were
// unregistered, fail with domain.ErrUnknownIdentity rather than returning a
// default key. All methods are safe for concurrent use.
package directory
