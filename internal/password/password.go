// Package password provides the pluggable password digest function. The
// default implementation is argon2id over a peppered input; the pepper is
// applied with HMAC-SHA256 before hashing so digests are bound to a
// server-held secret in addition to the per-digest salt.
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher is the digest function used for stored passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

// ErrMalformedDigest is returned when a stored digest cannot be decoded.
var ErrMalformedDigest = errors.New("malformed password digest")

const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 2
	argonSaltLen = 16
	argonKeyLen  = 32
)

// Argon2Hasher hashes passwords with argon2id and encodes digests in the
// PHC string format.
type Argon2Hasher struct {
	pepper []byte
}

var _ Hasher = (*Argon2Hasher)(nil)

// NewArgon2Hasher creates a hasher bound to the given pepper.
func NewArgon2Hasher(pepper string) *Argon2Hasher {
	return &Argon2Hasher{pepper: []byte(pepper)}
}

// applyPepper applies HMAC-SHA256 using the pepper as the key.
func (h *Argon2Hasher) applyPepper(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// Hash derives an argon2id digest of the peppered password with a fresh
// random salt.
func (h *Argon2Hasher) Hash(pass string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey(h.applyPepper(pass), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// Verify reports whether the password matches the stored digest. The key
// comparison is constant time.
func (h *Argon2Hasher) Verify(pass, digest string) (bool, error) {
	salt, key, memory, time, threads, err := decodeDigest(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(h.applyPepper(pass), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeDigest(digest string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}
	return salt, key, memory, time, threads, nil
}
