// Package crypto exposes the primitives used by cryptochat. Nothing here
// implements a primitive; every function is a thin wrapper over crypto/ecdh,
// crypto/ed25519 and golang.org/x/crypto.
//
// Contents
//
//   - Key agreement on P-256, P-384, P-521 or X25519 and HKDF-SHA256 session
//     key derivation (GenerateKeyPair, DeriveSessionKey)
//   - ChaCha20-Poly1305 sealing in the combined nonce||ciphertext||tag
//     layout (Seal, Open)
//   - Ed25519 signing and verification (GenerateSigningKey, Sign, Verify)
//   - Message digests, including the insecure legacy ones (Hash, HashAll)
//   - Passphrase sealing with an Argon2id-derived key (SealWithPassphrase,
//     OpenWithPassphrase)
//   - Base58 public key text and short fingerprints for display/logging
//
// # Notes
//
// DeriveSessionKey is symmetric: deriving with A's private key and B's public
// key yields the same key as B's private key and A's public key. Callers
// should Wipe session keys once they are done with them.
package crypto
