package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"cryptochat/internal/domain"
	"cryptochat/internal/util/memzero"
)

const signingKeyFilename = "signing_key.json.enc"

// SigningKeyFileStore persists the local signing identity to disk.
type SigningKeyFileStore struct {
	dir    string
	params scryptParams
	mu     sync.Mutex
}

// NewSigningKeyFileStore returns a SigningKeyFileStore rooted at dir.
func NewSigningKeyFileStore(dir string) *SigningKeyFileStore {
	return &SigningKeyFileStore{dir: dir, params: defaultScryptParams()}
}

// Path returns the file the key is stored in.
func (s *SigningKeyFileStore) Path() string {
	return filepath.Join(s.dir, signingKeyFilename)
}

// SaveSigningKey writes the encrypted key to disk, replacing any previous one.
func (s *SigningKeyFileStore) SaveSigningKey(passphrase string, key domain.SigningKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := encrypt(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadSigningKey reads and decrypts the key.
func (s *SigningKeyFileStore) LoadSigningKey(passphrase string) (domain.SigningKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.SigningKey{}, err
	}
	if b == nil {
		return domain.SigningKey{}, ErrNoSigningKey
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.SigningKey{}, err
	}
	defer memzero.Zero(pt)

	var key domain.SigningKey
	if err := json.Unmarshal(pt, &key); err != nil {
		return domain.SigningKey{}, err
	}
	return key, nil
}

// Compile-time assertion that SigningKeyFileStore implements domain.SigningKeyStore.
var _ domain.SigningKeyStore = (*SigningKeyFileStore)(nil)
