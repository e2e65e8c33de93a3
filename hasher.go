package staff

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext assigned to newly provisioned accounts.
// It is an operational default the account holder is expected to rotate on
// first use, not a secret. Deployments override it with WithDefaultPassword.
const DefaultPassword = "123456"

// DefaultBcryptCost matches the cost used for user-facing password hashes.
const DefaultBcryptCost = 14

// PasswordHasher hashes plaintext credentials and verifies submissions
// against stored digests. The same hasher must be used at provisioning and
// at verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}

// BcryptHasher is the recommended hasher: salted, slow, self-describing.
type BcryptHasher struct {
	Cost int
}

func (h *BcryptHasher) cost() int {
	if h.Cost == 0 {
		return DefaultBcryptCost
	}
	return h.Cost
}

// Hash will generate a password hash
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	return string(out), err
}

// Compare will validate the given cleartext password matches the hash
func (h *BcryptHasher) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// LegacyHasher reproduces the digest scheme of the previous admin backend:
// a single unsalted md5 hex digest. It exists for byte-compatible migration
// of already-stored hashes; new deployments should use BcryptHasher.
type LegacyHasher struct{}

// Hash returns the md5 hex digest of the plaintext
func (LegacyHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Compare recomputes the digest and checks it in constant time. An empty
// submission is a mismatch, not a validation error: no stored digest is ever
// empty, and the verifier must report all wrong passwords the same way.
func (h LegacyHasher) Compare(password, hash string) error {
	if password == "" {
		return ErrPasswordMismatch
	}

	digest, err := h.Hash(password)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

var (
	_ PasswordHasher = (*BcryptHasher)(nil)
	_ PasswordHasher = LegacyHasher{}
)
