package derivation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/custody/internal/domain"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestEngine(t *testing.T) *Engine {
	seed, err := SeedFromSecret(testMnemonic)
	require.NoError(t, err)
	engine, err := NewEngine(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_EmptySeed(t *testing.T) {
	_, err := NewEngine(nil, &chaincfg.MainNetParams)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestSeedFromSecret(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		expectErr bool
		seedLen   int
	}{
		{name: "Mnemonic", secret: testMnemonic, seedLen: 64},
		{name: "Hex seed", secret: "000102030405060708090a0b0c0d0e0f", seedLen: 16},
		{name: "Hex seed with prefix", secret: "0x000102030405060708090a0b0c0d0e0f", seedLen: 16},
		{name: "Empty", secret: "  ", expectErr: true},
		{name: "Bad checksum mnemonic", secret: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", expectErr: true},
		{name: "Too short hex", secret: "0011", expectErr: true},
		{name: "Not hex", secret: "zzzz", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := SeedFromSecret(tt.secret)
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrConfiguration))
				return
			}
			assert.NoError(t, err)
			assert.Len(t, seed, tt.seedLen)
		})
	}
}

func TestDeriveIndex(t *testing.T) {
	seen := make(map[uint32]string)
	for i := 0; i < 1000; i++ {
		userID := fmt.Sprintf("user-%d", i)
		idx := DeriveIndex(userID)

		assert.Equal(t, idx, DeriveIndex(userID), "index must be deterministic")
		assert.Less(t, idx, uint32(0x80000000), "index must stay non-hardened")

		prev, dup := seen[idx]
		assert.False(t, dup, "collision between %s and %s", prev, userID)
		seen[idx] = userID
	}
}

func TestDeriveKeypair_KnownVectors(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		currency domain.Currency
		address  string
		path     string
	}{
		{
			name:     "Bitcoin first external address",
			currency: domain.CurrencyBTC,
			address:  "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA",
			path:     "m/44'/0'/0'/0/0",
		},
		{
			name:     "Ethereum first external address",
			currency: domain.CurrencyETH,
			address:  "0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
			path:     "m/44'/60'/0'/0/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := engine.DeriveKeypair(tt.currency, 0)
			require.NoError(t, err)
			defer kp.Wipe()

			assert.Equal(t, tt.address, kp.Address)
			assert.Equal(t, tt.path, kp.Path)
			assert.NotEmpty(t, kp.PrivateKey)
		})
	}
}

func TestDerive_CurrenciesNeverShareKeys(t *testing.T) {
	engine := newTestEngine(t)

	keys := make(map[string]domain.Currency)
	for _, c := range domain.SupportedCurrencies() {
		kp, err := engine.Derive("user-1", c, 0)
		require.NoError(t, err)

		prev, dup := keys[string(kp.PrivateKey)]
		assert.False(t, dup, "%s shares a private key with %s", c, prev)
		keys[string(kp.PrivateKey)] = c
		kp.Wipe()
	}
}

func TestDerive_Generations(t *testing.T) {
	engine := newTestEngine(t)

	for _, c := range domain.SupportedCurrencies() {
		t.Run(string(c), func(t *testing.T) {
			base, err := engine.Derive("user-42", c, 0)
			require.NoError(t, err)
			again, err := engine.Derive("user-42", c, 0)
			require.NoError(t, err)
			rotated, err := engine.Derive("user-42", c, 1)
			require.NoError(t, err)

			assert.Equal(t, base.Address, again.Address)
			assert.Equal(t, base.PrivateKey, again.PrivateKey)
			assert.NotEqual(t, base.Address, rotated.Address)
			assert.NotEqual(t, base.PrivateKey, rotated.PrivateKey)
		})
	}
}

func TestDerive_UnsupportedCurrency(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Derive("user-1", domain.Currency("DOGE"), 0)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedCurrency))
}

func TestKeypair_Wipe(t *testing.T) {
	engine := newTestEngine(t)

	kp, err := engine.Derive("user-1", domain.CurrencyETH, 0)
	require.NoError(t, err)
	backing := kp.PrivateKey

	kp.Wipe()

	assert.Nil(t, kp.PrivateKey)
	for _, b := range backing {
		assert.Equal(t, byte(0), b)
	}
}
