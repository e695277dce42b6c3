package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hash_RoundTrip(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := svc.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hash_WrongPassword(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("password1")
	require.NoError(t, err)

	ok, err := svc.Verify("password2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hash_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService()

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same password should hash differently due to random salt")
}

func TestArgon2Verify_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify("password", tt.hash)
			assert.Error(t, err)
		})
	}
}
