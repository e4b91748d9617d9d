// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_KnownVector(t *testing.T) {
	h := NewSHA256Hasher("")

	assert.Equal(t,
		"e7cf3ef4f17c3999a94f2c6f612e8a888e5b1026878e4e19398b23bd38ec221a",
		h.Hash("Password"),
	)
	// empty string digest
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		h.Hash(""),
	)
}

func TestSHA256Hasher_Format(t *testing.T) {
	got := NewSHA256Hasher("").Hash("correct horse battery staple")

	require.Len(t, got, 64)
	assert.Equal(t, strings.ToLower(got), got)
	_, err := hex.DecodeString(got)
	assert.NoError(t, err)
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := NewSHA256Hasher("")
	assert.Equal(t, h.Hash("secret"), h.Hash("secret"))
	assert.NotEqual(t, h.Hash("secret"), h.Hash("Secret"))
}

func TestSHA256Hasher_WithKey(t *testing.T) {
	const key = "test-secret-key"
	h := NewSHA256Hasher(key)

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte("Password"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, h.Hash("Password"))
	assert.NotEqual(t, NewSHA256Hasher("").Hash("Password"), h.Hash("Password"))
}

func TestSHA256Hasher_Concurrent(t *testing.T) {
	h := NewSHA256Hasher("")
	want := h.Hash("Password")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.Hash("Password"))
		}()
	}
	wg.Wait()
}
