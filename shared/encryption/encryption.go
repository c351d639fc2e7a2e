// Package encryption protects personal fields at rest.
//
// Values are sealed with AES-GCM under a random 12 byte nonce and stored as
// URL-safe base64 of nonce||ciphertext. Emails additionally get a keyed
// lookup hash so users can be found without decrypting every row.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"scams/config"
	"strings"
)

var (
	ErrInvalidKey        = errors.New("encryption key must be url-safe base64 of 16, 24 or 32 bytes")
	ErrMalformedCipher   = errors.New("malformed ciphertext")
	ErrMissingHashPepper = errors.New("email hash pepper is required")
)

type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashEmail(email string) string
}

type aesCipher struct {
	aead   cipher.AEAD
	pepper []byte
}

func New(cfg *config.Config) (Cipher, error) {
	key, err := base64.URLEncoding.DecodeString(cfg.Encryption.AESKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKey
	}

	if cfg.Encryption.EmailPepper == "" {
		return nil, ErrMissingHashPepper
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}

	return &aesCipher{
		aead:   aead,
		pepper: []byte(cfg.Encryption.EmailPepper),
	}, nil
}

func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.URLEncoding.EncodeToString(sealed), nil
}

func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCipher, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", ErrMalformedCipher
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

// HashEmail is stable for the same pepper, ignoring case and surrounding spaces.
func (c *aesCipher) HashEmail(email string) string {
	mac := hmac.New(sha256.New, c.pepper)
	mac.Write([]byte(NormalizeEmail(email)))

	return hex.EncodeToString(mac.Sum(nil))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
