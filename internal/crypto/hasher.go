// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential hasher: salted, iterated password
// hashing with a configurable iteration count.
//
// Digest layout
//
// New digests are written in a tagged, self-describing format:
//
//	pbkdf2_sha512$<iterations>$<salt>$<hex-derived-key>
//
// where <salt> is the 64-character hex digest of SHA-256 over a fresh block
// of random bytes. Recording the parameters inside the digest means a change
// of the configured defaults never invalidates previously stored digests.
//
// Verify additionally accepts the legacy untagged layout, a fixed-width
// 64-character salt immediately followed by the hex-encoded derived key with
// no separator, which older records may still carry.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count applied when the
	// hasher is constructed without an explicit override.
	DefaultIterations = 100_000

	// saltRandomBytes is the size of the CSPRNG block fed into SHA-256 to
	// produce a salt.
	saltRandomBytes = 60

	// saltHexLen is the fixed width of a hex-encoded SHA-256 digest. The
	// legacy digest layout relies on this width to split salt from hash.
	saltHexLen = sha256.Size * 2

	// derivedKeyLen is the PBKDF2 output size: one full SHA-512 block.
	derivedKeyLen = sha512.Size

	// algorithmTag identifies the KDF in the tagged digest format.
	algorithmTag = "pbkdf2_sha512"
)

// hasher is the private implementation of [PasswordHasher].
type hasher struct {
	iterations int
}

// NewHasher constructs a [PasswordHasher] with the given PBKDF2 iteration
// count. A non-positive value selects [DefaultIterations].
func NewHasher(iterations int) PasswordHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &hasher{iterations: iterations}
}

// GenerateSalt produces a fresh salt: the hex digest of SHA-256 over
// [saltRandomBytes] bytes read from the OS CSPRNG. The result is always
// [saltHexLen] ASCII characters. Returns an error only if the random read
// fails.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltRandomBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for salt: %w", err)
	}

	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}

// Hash implements [PasswordHasher]. It generates a random salt, derives the
// key, and encodes both together with the KDF parameters in the tagged
// digest format.
func (h *hasher) Hash(password string) (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	derived := h.HashWithSalt(password, salt)

	return strings.Join([]string{algorithmTag, strconv.Itoa(h.iterations), salt, derived}, "$"), nil
}

// HashWithSalt implements [PasswordHasher]. It runs PBKDF2-HMAC-SHA512 over
// the password with the given salt and the configured iteration count and
// hex-encodes the derived key.
func (h *hasher) HashWithSalt(password, salt string) string {
	return hashWithParams(password, salt, h.iterations)
}

// Verify implements [PasswordHasher]. Tagged digests are recomputed with the
// parameters recorded inside them; untagged digests are split at the fixed
// salt width and recomputed with the hasher's configured iteration count.
// The comparison is constant-time.
func (h *hasher) Verify(password, digest string) bool {
	if salt, iterations, expected, ok := parseTaggedDigest(digest); ok {
		return equalDigests(hashWithParams(password, salt, iterations), expected)
	}

	// Legacy layout: fixed-width salt directly followed by the derived key.
	if len(digest) <= saltHexLen {
		return false
	}
	salt, expected := digest[:saltHexLen], digest[saltHexLen:]

	return equalDigests(h.HashWithSalt(password, salt), expected)
}

// hashWithParams derives the hex-encoded PBKDF2-HMAC-SHA512 key for the
// given password, salt, and iteration count.
func hashWithParams(password, salt string, iterations int) string {
	derived := pbkdf2.Key([]byte(password), []byte(salt), iterations, derivedKeyLen, sha512.New)
	return hex.EncodeToString(derived)
}

// parseTaggedDigest splits a digest in the tagged format into its salt,
// iteration count, and expected hash. ok is false when digest does not carry
// the tagged layout or any component is malformed.
func parseTaggedDigest(digest string) (salt string, iterations int, expected string, ok bool) {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 || parts[0] != algorithmTag {
		return "", 0, "", false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return "", 0, "", false
	}

	if parts[2] == "" || parts[3] == "" {
		return "", 0, "", false
	}

	return parts[2], iterations, parts[3], true
}

// equalDigests compares two hex digest strings in constant time.
func equalDigests(computed, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}
