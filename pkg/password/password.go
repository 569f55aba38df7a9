// Package password implements the stored-credential scheme for api users.
//
// A stored credential is "<salt>$<base64 hash>" where the hash is
// PBKDF2-HMAC-SHA256 over the password seeded with the salt. Raw passwords
// are accepted only as write-time input and never persisted.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"math/big"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLength is the number of characters in a generated salt.
	saltLength = 16
	// iterations is the PBKDF2 round count.
	iterations = 100000
	// keyLength is the derived key size in bytes.
	keyLength = 32
	// separator joins the salt and the encoded hash in the stored form.
	separator = "$"
)

// saltAlphabet covers ASCII letters, digits and punctuation.
const saltAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// GenerateSalt returns a fresh 16-character salt drawn from saltAlphabet
// using the platform's cryptographically secure random source.
func GenerateSalt() (string, error) {
	var sb strings.Builder
	sb.Grow(saltLength)

	alphabetSize := big.NewInt(int64(len(saltAlphabet)))
	for i := 0; i < saltLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		sb.WriteByte(saltAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// Hash derives the stored credential for a password and salt.
func Hash(password, salt string) string {
	raw := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return salt + separator + base64.StdEncoding.EncodeToString(raw)
}

// Verify reports whether password matches a stored credential. The salt is
// recovered from the stored form and the hash recomputed for comparison.
// Salts have a fixed length and are extracted by position; the alphabet
// itself contains the separator character, so splitting on it would corrupt
// some salts.
func Verify(password, stored string) bool {
	if len(stored) <= saltLength+len(separator) {
		return false
	}
	salt := stored[:saltLength]
	recomputed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(stored)) == 1
}
