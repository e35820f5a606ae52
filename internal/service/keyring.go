package service

import (
	"sync"

	"github.com/MKhiriev/phantom-vault/internal/crypto"
)

// keyring caches folder keys of TEMP_UNLOCKED folders for the lifetime of
// the process so that a session-boundary relock needs no master key. Keys
// are copied on the way in and out and wiped on removal.
type keyring struct {
	mu   sync.Mutex
	keys map[string][]byte
}

func newKeyring() *keyring {
	return &keyring{keys: make(map[string][]byte)}
}

func (k *keyring) put(folderID string, key []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if old, ok := k.keys[folderID]; ok {
		crypto.SecureWipe(old)
	}
	k.keys[folderID] = append([]byte(nil), key...)
}

// get returns a copy of the key; the caller wipes it.
func (k *keyring) get(folderID string) ([]byte, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	key, ok := k.keys[folderID]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), key...), true
}

func (k *keyring) drop(folderID string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if key, ok := k.keys[folderID]; ok {
		crypto.SecureWipe(key)
		delete(k.keys, folderID)
	}
}

// wipe drops every key.
func (k *keyring) wipe() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for id, key := range k.keys {
		crypto.SecureWipe(key)
		delete(k.keys, id)
	}
}
