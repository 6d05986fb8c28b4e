package auth

import (
	"testing"

	"mealtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "secret"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	ok, err := hasher.Verify("secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// A wrong password is not an error.
	ok, err = hasher.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	// A corrupt stored hash is.
	ok, err = hasher.Verify("secret", "invalid_hash")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
		{name: "zero falls back", cfg: &config.Config{Auth: &config.AuthConfig{}}, want: bcrypt.DefaultCost},
		{name: "too high falls back", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
		{name: "no auth section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(string(make([]byte, 73)))
	assert.Error(t, err)
}
