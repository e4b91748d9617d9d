package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// SHA256Hasher turns passwords into lowercase hex-encoded SHA-256 digests.
//
// When constructed with a non-empty key the digest is an HMAC-SHA256 keyed
// with it, so a leaked table cannot be matched against precomputed plain
// SHA-256 values. Hash instances are pooled.
//
// Example usage:
//
//	h := utils.NewSHA256Hasher("")
//	h.Hash("Password") // "e7cf3ef4f17c3999a94f2c6f612e8a888e5b1026878e4e19398b23bd38ec221a"
type SHA256Hasher struct {
	pool sync.Pool
}

// NewSHA256Hasher returns a hasher. An empty hashKey selects plain SHA-256.
func NewSHA256Hasher(hashKey string) *SHA256Hasher {
	h := &SHA256Hasher{}
	if hashKey == "" {
		h.pool.New = func() any { return sha256.New() }
		return h
	}

	key := []byte(hashKey)
	h.pool.New = func() any { return hmac.New(sha256.New, key) }
	return h
}

// Hash returns the 64-character lowercase hex digest of password.
// It is deterministic and safe for concurrent use.
func (s *SHA256Hasher) Hash(password string) string {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(password))
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return hex.EncodeToString(sum)
}

