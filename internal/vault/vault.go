// Package vault seals wallet private keys at rest with AES-256-GCM.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"github.com/GlebRadaev/custody/internal/domain"
)

const (
	KeySize = 32

	blobVersion byte = 1
	nonceSize        = 12
	tagSize          = 16
	headerSize       = 1 + nonceSize
)

type Vault struct {
	aead cipher.AEAD
	rand io.Reader
}

func New(key []byte) (*Vault, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: encryption key must be %d bytes, got %d", domain.ErrConfiguration, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return &Vault{aead: aead, rand: rand.Reader}, nil
}

// KeyFromSecret decodes a base64 or hex encoded 32-byte key.
func KeyFromSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("%w: encryption key is not set", domain.ErrConfiguration)
	}
	if key, err := hex.DecodeString(secret); err == nil && len(key) == KeySize {
		return key, nil
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if key, err := enc.DecodeString(secret); err == nil && len(key) == KeySize {
			return key, nil
		}
	}
	return nil, fmt.Errorf("%w: encryption key must be %d bytes encoded as hex or base64", domain.ErrConfiguration, KeySize)
}

// DevelopmentKey derives a fixed key for local development. It must never
// be used for real funds.
func DevelopmentKey() []byte {
	r := hkdf.New(sha256.New, []byte("custody-development-only"), nil, []byte("wallet-key-encryption"))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		panic(err)
	}
	return key
}

// Encrypt returns version | nonce | ciphertext | tag. Every call draws a
// fresh nonce.
func (v *Vault) Encrypt(plaintext []byte) ([]byte, error) {
	blob := make([]byte, headerSize, headerSize+len(plaintext)+tagSize)
	blob[0] = blobVersion
	if _, err := io.ReadFull(v.rand, blob[1:headerSize]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return v.aead.Seal(blob, blob[1:headerSize], plaintext, []byte{blobVersion}), nil
}

func (v *Vault) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < headerSize+tagSize || blob[0] != blobVersion {
		return nil, domain.ErrDecryption
	}
	plaintext, err := v.aead.Open(nil, blob[1:headerSize], blob[headerSize:], []byte{blobVersion})
	if err != nil {
		return nil, domain.ErrDecryption
	}
	return plaintext, nil
}
