package hash

import (
	"sync"
	"testing"
)

func TestSHA256Hasher_HashBytes(t *testing.T) {
	hasher := NewSHA256Hasher()

	t.Run("known digests", func(t *testing.T) {
		tests := []struct {
			name string
			data []byte
			want string
		}{
			{
				name: "empty",
				data: nil,
				want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			},
			{
				name: "hello world",
				data: []byte("hello world"),
				want: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := hasher.HashBytes(tt.data); got != tt.want {
					t.Errorf("HashBytes() = %s, want %s", got, tt.want)
				}
			})
		}
	})

	t.Run("different content has different hashes", func(t *testing.T) {
		if hasher.HashBytes([]byte("content A")) == hasher.HashBytes([]byte("content B")) {
			t.Error("different content should have different hashes")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher()

	t.Run("returns default hash for unknown content", func(t *testing.T) {
		if hash := hasher.HashBytes([]byte("anything")); hash != "fakehash" {
			t.Errorf("Expected default hash 'fakehash', got: %s", hash)
		}
	})

	t.Run("returns configured hash for known content", func(t *testing.T) {
		hasher.SetHash([]byte("png bytes"), "custom-hash-123")
		if hash := hasher.HashBytes([]byte("png bytes")); hash != "custom-hash-123" {
			t.Errorf("Expected hash custom-hash-123, got: %s", hash)
		}
	})

	t.Run("counts calls concurrently", func(t *testing.T) {
		h := NewFakeHasher()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				h.HashBytes([]byte{byte(i)})
			}()
		}
		wg.Wait()
		if h.Calls() != 20 {
			t.Errorf("Calls() = %d, want 20", h.Calls())
		}
	})
}
