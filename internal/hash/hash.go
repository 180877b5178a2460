// Package hash computes content checksums for encoded images.
//
// Every resized output is reported with the SHA-256 of its encoded bytes so
// scripts can verify that two runs produced identical files. A fake
// implementation keeps engine tests independent of the real digest.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// HashBytes computes the hash of data.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes returns the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with deterministic hashes for testing.
// It is safe for concurrent use.
type FakeHasher struct {
	mu     sync.Mutex
	hashes map[string]string
	calls  int
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for specific content.
func (h *FakeHasher) SetHash(data []byte, hash string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hashes[string(data)] = hash
}

// Calls returns how many hashes were computed.
func (h *FakeHasher) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// HashBytes returns the predetermined hash for data, or "fakehash".
func (h *FakeHasher) HashBytes(data []byte) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if hash, ok := h.hashes[string(data)]; ok {
		return hash
	}
	return "fakehash"
}
