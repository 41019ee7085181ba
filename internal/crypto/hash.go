package crypto

import (
	"crypto/md5"  // #nosec G501 -- offered for comparison, flagged Insecure
	"crypto/sha1" // #nosec G505 -- offered for comparison, flagged Insecure
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// HashAlgorithm names a digest function.
type HashAlgorithm string

// Supported digests, in display order.
const (
	SHA512 HashAlgorithm = "SHA-512"
	SHA384 HashAlgorithm = "SHA-384"
	SHA256 HashAlgorithm = "SHA-256"
	SHA1   HashAlgorithm = "SHA-1"
	MD5    HashAlgorithm = "MD5"
)

// HashAlgorithms lists every supported digest in display order.
var HashAlgorithms = []HashAlgorithm{SHA512, SHA384, SHA256, SHA1, MD5}

// Insecure reports whether the algorithm is broken for collision resistance.
func (a HashAlgorithm) Insecure() bool { return a == SHA1 || a == MD5 }

// Size returns the digest length in bytes, or 0 for unknown algorithms.
func (a HashAlgorithm) Size() int {
	h, err := a.new()
	if err != nil {
		return 0
	}
	return h.Size()
}

func (a HashAlgorithm) new() (hash.Hash, error) {
	switch a {
	case SHA512:
		return sha512.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA1:
		return sha1.New(), nil // #nosec G401
	case MD5:
		return md5.New(), nil // #nosec G401
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", string(a))
}

// ParseHashAlgorithm resolves a digest by name, ignoring case and dashes.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	norm := func(s string) string { return strings.ToLower(strings.ReplaceAll(s, "-", "")) }
	for _, a := range HashAlgorithms {
		if norm(string(a)) == norm(name) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown hash algorithm %q", name)
}

// Digest is a named, hex-encoded hash.
type Digest struct {
	Algorithm HashAlgorithm
	Hex       string
}

// HashReader digests everything read from r.
func HashReader(a HashAlgorithm, r io.Reader) (Digest, error) {
	h, err := a.new()
	if err != nil {
		return Digest{}, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	return Digest{Algorithm: a, Hex: hex.EncodeToString(h.Sum(nil))}, nil
}

// Hash digests data.
func Hash(a HashAlgorithm, data []byte) (Digest, error) {
	h, err := a.new()
	if err != nil {
		return Digest{}, err
	}
	h.Write(data)
	return Digest{Algorithm: a, Hex: hex.EncodeToString(h.Sum(nil))}, nil
}

// HashAll digests data with every supported algorithm.
func HashAll(data []byte) []Digest {
	out := make([]Digest, 0, len(HashAlgorithms))
	for _, a := range HashAlgorithms {
		d, _ := Hash(a, data)
		out = append(out, d)
	}
	return out
}

// HashFile digests the file at path with every supported algorithm in a
// single read.
func HashFile(path string) ([]Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hashes := make([]hash.Hash, len(HashAlgorithms))
	writers := make([]io.Writer, len(HashAlgorithms))
	for i, a := range HashAlgorithms {
		hashes[i], _ = a.new()
		writers[i] = hashes[i]
	}
	if _, err := io.Copy(io.MultiWriter(writers...), f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	out := make([]Digest, len(HashAlgorithms))
	for i, a := range HashAlgorithms {
		out[i] = Digest{Algorithm: a, Hex: hex.EncodeToString(hashes[i].Sum(nil))}
	}
	return out, nil
}
