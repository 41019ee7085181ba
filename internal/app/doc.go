// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, configures logging, and builds the directory,
// transport, identity service, participant registry and signing key store,
// exposing them via the Wire struct for commands to use.
package app
