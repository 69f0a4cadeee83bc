package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies password digests. Implementations are
// pure and hold no external state; a single instance is safe for concurrent
// use by all request handlers.
type PasswordHasher interface {
	// Hash derives a digest string for the given plaintext password using a
	// freshly generated random salt. The returned string is self-describing:
	// it records the KDF parameters used, so Verify can always recompute the
	// digest with the parameters that produced it, even after the configured
	// defaults change.
	Hash(password string) (string, error)

	// HashWithSalt derives the hex-encoded hash of password with the given
	// salt and the hasher's configured parameters. Deterministic: the same
	// (password, salt, iterations, hash function) always yields the same
	// output.
	HashWithSalt(password, salt string) string

	// Verify reports whether password matches the stored digest. Both the
	// tagged format produced by Hash and the legacy fixed-width salt-prefix
	// format are accepted. Malformed digests verify as false.
	Verify(password, digest string) bool
}
