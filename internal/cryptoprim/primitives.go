// Package cryptoprim implements the pure, stateless cryptographic
// primitives the rest of tinfoil is built from: SHA-512 digests, CSPRNG
// bytes, the Scrypt KDF, and constant-time HMAC-SHA-512. AES-256-CBC lives
// in aescbc.go.
package cryptoprim

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/scrypt"
)

// SHA512 returns the SHA-512 digest of data.
func SHA512(data []byte) [64]byte {
	return sha512.Sum512(data)
}

// CSPRNG returns n cryptographically secure random bytes.
func CSPRNG(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Scrypt derives keyLen bytes from password and salt using the Scrypt KDF.
// N must be a power of two greater than 1; r and p must be positive.
func Scrypt(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	return scrypt.Key(password, salt, N, r, p, keyLen)
}

// HMACSHA512 computes the HMAC-SHA-512 of data under key.
func HMACSHA512(key, data []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// HMACVerify reports whether tag is the correct HMAC-SHA-512 of data under
// key, in constant time. It never panics on malformed input; a tag of the
// wrong length simply fails to verify.
func HMACVerify(key, data, tag []byte) bool {
	expected := HMACSHA512(key, data)
	return hmac.Equal(expected[:], tag)
}
