package auth

import (
	"testing"

	"bizhub/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("StrongPass123!", "not-a-hash"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "missing auth", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 11}}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}
