package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2-SHA256 hashing.
const (
	iterations = 500000 // Iteration count, per current hashlib guidance for SHA-256
	keyLength  = 32     // Length of the derived key
	saltLength = 16     // Length of the salt
)

// ErrMalformedHash reports a stored password hash that does not parse as a
// modular-crypt pbkdf2-sha256 string. Callers must treat this as data
// corruption, not as a failed password check.
var ErrMalformedHash = errors.New("cryptox: malformed password hash")

// b64 is the standard base64 alphabet with "." and "/" as the 62nd and 63rd
// characters, unpadded. This matches the passlib pbkdf2_sha256 encoding.
var b64 = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./",
).WithPadding(base64.NoPadding)

// hashPattern is the strict shape of a stored hash. The iteration count must
// not carry leading zeros and the derived key is always 43 characters
// (32 bytes of unpadded base64).
var hashPattern = regexp.MustCompile(
	`^\$pbkdf2-sha256\$([1-9][0-9]*)\$([A-Za-z0-9./]+)\$([A-Za-z0-9./]{43})$`,
)

// HashPassword hashes the password with PBKDF2-SHA256 and a fresh random
// salt, and wraps the result in modular crypt format:
//
//	$pbkdf2-sha256$<iterations>$<salt>$<derived-key>
//
// Two calls with the same password produce different strings.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return fmt.Sprintf(
		"$pbkdf2-sha256$%d$%s$%s",
		iterations,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the stored modular-crypt
// hash. It returns ErrMalformedHash when the stored string does not parse;
// a parseable hash with a non-matching password returns (false, nil).
func VerifyPassword(passwordHash, password string) (bool, error) {
	match := hashPattern.FindStringSubmatch(passwordHash)
	if match == nil {
		return false, ErrMalformedHash
	}

	rounds, err := strconv.Atoi(match[1])
	if err != nil {
		return false, ErrMalformedHash
	}

	salt, err := b64.DecodeString(match[2])
	if err != nil {
		return false, ErrMalformedHash
	}
	expected, err := b64.DecodeString(match[3])
	if err != nil {
		return false, ErrMalformedHash
	}

	computed := pbkdf2.Key([]byte(password), salt, rounds, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
