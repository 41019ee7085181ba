package types

// Envelope is the unit carried by the transport. Ciphertext is opaque to
// everything except the message codec.
type Envelope struct {
	Ciphertext []byte
	From       Identity
	To         Identity
}

// Entry is one line of a chat history.
//
// Err is set when a received ciphertext could not be opened; Text is empty in
// that case and the caller decides how to render the failure.
type Entry struct {
	From Identity
	Text string
	Err  error
}

// Failed reports whether the entry records a decryption failure.
func (e Entry) Failed() bool { return e.Err != nil }
