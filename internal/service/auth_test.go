package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_CheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		passwordHash   string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			passwordHash:   string(hash),
			inputPassword:  "Secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			passwordHash:   string(hash),
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			passwordHash:   string(hash),
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			passwordHash:   string(hash),
			inputPassword:  "secret123",
			expectedResult: false,
		},
		{
			name:           "malformed hash",
			passwordHash:   "not-a-hash",
			inputPassword:  "Secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(tt.passwordHash)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}
