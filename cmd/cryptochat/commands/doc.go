// Package commands defines the cryptochat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - demo           Run an in-process encrypted conversation between the roster
//   - keygen         Print a fresh key-agreement key pair
//   - derive         Derive the session key for a private/public key pair
//   - hash           Print digests of text or a file
//   - sign           Manage the signing identity, sign and verify messages
//   - seal / open    Encrypt and decrypt text under a passphrase
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (directory, bus, registry, stores) before any
// subcommand runs, so handlers share one app.Wire.
package commands
