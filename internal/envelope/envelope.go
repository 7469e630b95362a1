// Package envelope composes internal/cryptoprim's primitives into the
// single authenticated-encryption record format used for both the store's
// opcode and every user record: encrypt-then-MAC over CBC-padded
// ciphertext.
package envelope

import (
	"errors"

	"tinfoil/internal/cryptoprim"
)

// ErrAuthenticationFailed is returned by Open when the HMAC tag does not
// match. The ciphertext is never decrypted in this case.
var ErrAuthenticationFailed = errors.New("envelope: authentication failed")

// Envelope is the (iv, ciphertext, tag) triple produced by Seal and
// consumed by Open.
type Envelope struct {
	IV         []byte // 16 bytes
	Ciphertext []byte // positive multiple of 16 bytes
	Tag        []byte // 64 bytes (HMAC-SHA-512)
}

// Seal encrypts plaintext under aesKey and authenticates the result under
// hmacKey: (iv, ciphertext) = AES-256-CBC(aesKey, plaintext) with a random
// IV, then tag = HMAC-SHA-512(hmacKey, iv || ciphertext).
func Seal(plaintext, aesKey, hmacKey []byte) (Envelope, error) {
	iv, ciphertext, err := cryptoprim.AESCBCEncrypt(aesKey, plaintext)
	if err != nil {
		return Envelope{}, err
	}

	tag := cryptoprim.HMACSHA512(hmacKey, append(append([]byte{}, iv...), ciphertext...))

	return Envelope{
		IV:         iv,
		Ciphertext: ciphertext,
		Tag:        tag[:],
	}, nil
}

// Open verifies env.Tag against hmacKey in constant time before touching
// the decryptor; a failed tag check returns ErrAuthenticationFailed and
// never decrypts. Only on a successful tag check is the ciphertext
// decrypted under aesKey. This ordering is load-bearing: it is what
// prevents a padding-oracle attack.
func Open(env Envelope, aesKey, hmacKey []byte) ([]byte, error) {
	signedData := append(append([]byte{}, env.IV...), env.Ciphertext...)

	if !cryptoprim.HMACVerify(hmacKey, signedData, env.Tag) {
		return nil, ErrAuthenticationFailed
	}

	return cryptoprim.AESCBCDecrypt(aesKey, env.IV, env.Ciphertext)
}
