package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashAdminSecrets bcrypt-hashes the shared administrator secrets once at
// startup so the plaintext does not stay in memory. Blank entries are skipped.
func HashAdminSecrets(secrets []string) ([]string, error) {
	hashes := make([]string, 0, len(secrets))
	for i, secret := range secrets {
		if secret == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing administrator secret %d: %w", i+1, err)
		}
		hashes = append(hashes, string(hash))
	}
	return hashes, nil
}

// MatchesAdminSecret reports whether secret matches any of the hashes.
func MatchesAdminSecret(secret string, hashes []string) bool {
	if secret == "" {
		return false
	}
	for _, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil {
			return true
		}
	}
	return false
}

// RandomSigningKey returns n random bytes hex encoded, used as the per-process
// session signing key when none is configured.
func RandomSigningKey(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("key length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
