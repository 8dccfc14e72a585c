// Package seal provides the pluggable encrypter the frame codec uses when
// FLAG_ENCRYPTED is requested (spec.md §4.2 step 3, §6.5's Encrypter
// interface).
//
// No repository in the retrieved example pack exposes a generic
// byte-in/byte-out encrypt/decrypt interface (the one crypto-adjacent
// example, osakka-entitydb, only wraps password hashing), so this is one
// of the two components (with xmlbridge) built on the standard library
// rather than a pack dependency — see DESIGN.md.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// Sealer encrypts and decrypts the frame's inner byte sequence. Like
// compress.Codec, it is a stateless, synchronous pure byte transform;
// any failure is surfaced to the caller rather than swallowed.
type Sealer interface {
	Encrypt(data []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
}

// NoOp leaves data untouched. It is the default when a Codec is built
// without encryption configured.
type NoOp struct{}

var _ Sealer = NoOp{}

func (NoOp) Encrypt(data []byte) ([]byte, error) { return data, nil }
func (NoOp) Decrypt(data []byte) ([]byte, error) { return data, nil }

// AESGCM implements Sealer with AES-GCM (AES-128, -192 or -256, chosen by
// the key length given to NewAESGCM): a random nonce is prepended
// to each ciphertext so Decrypt is self-contained given only the key.
type AESGCM struct {
	gcm cipher.AEAD
}

var _ Sealer = (*AESGCM)(nil)

// NewAESGCM builds an AESGCM sealer from a 16/24/32-byte key (AES-128/192/256).
func NewAESGCM(key []byte) (*AESGCM, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: invalid AES key: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("seal: failed to build GCM: %w", err)
	}

	return &AESGCM{gcm: gcm}, nil
}

// Encrypt seals data, returning nonce||ciphertext||tag.
func (a *AESGCM) Encrypt(data []byte) ([]byte, error) {
	nonce := make([]byte, a.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("seal: failed to generate nonce: %w", err)
	}

	return a.gcm.Seal(nonce, nonce, data, nil), nil
}

// Decrypt reverses Encrypt.
func (a *AESGCM) Decrypt(data []byte) ([]byte, error) {
	nonceSize := a.gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("seal: ciphertext shorter than nonce")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]

	plain, err := a.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("seal: decryption failed: %w", err)
	}

	return plain, nil
}
