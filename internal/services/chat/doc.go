// Package chat implements participants and their pairwise chat sessions.
//
// A Registry owns the identity to participant table and hands out
// participants on a get-or-create basis. Creating a participant generates a
// key-agreement key pair, publishes the public key in the KeyDirectory and
// subscribes the participant to the Transport under its identity.
//
// Each participant memoises one Session per counterpart. Sending derives the
// pair's session key, seals the text, publishes the ciphertext and records the
// plaintext locally. Receiving reverses the process on the other side. Session
// keys are derived on every use and wiped afterwards; nothing but public keys
// and ciphertext ever leaves a participant.
//
// # Locking
//
// The registry table, each participant's session table and each session's
// history are guarded by their own mutex. None of these locks is held while
// calling into the directory, the transport or another participant, so
// synchronous delivery (including sending to oneself) cannot deadlock.
package chat
