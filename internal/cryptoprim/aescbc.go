package cryptoprim

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

// ErrInvalidPadding is returned by AESCBCDecrypt when the PKCS#7 padding on
// decrypted plaintext fails to validate.
var ErrInvalidPadding = errors.New("cryptoprim: invalid pkcs7 padding")

const blockSize = aes.BlockSize // 16

// pad applies PKCS#7 padding to data for the AES block size. A full block of padding is always added, even when len(data) is
// already a multiple of blockSize — this matches the standard and the
// behavior of cryptography.hazmat's PKCS7 padder.
func pad(data []byte) []byte {
	padLen := blockSize - (len(data) % blockSize)
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// unpad validates and strips PKCS#7 padding, checking every padding byte.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}

// AESCBCEncrypt PKCS#7-pads plaintext and encrypts it under key (which must
// be 32 bytes, for AES-256) using a freshly generated random IV.
func AESCBCEncrypt(key, plaintext []byte) (iv, ciphertext []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	iv, err = CSPRNG(blockSize)
	if err != nil {
		return nil, nil, err
	}

	padded := pad(plaintext)
	ciphertext = make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, padded)

	return iv, ciphertext, nil
}

// AESCBCDecrypt decrypts ciphertext (a positive multiple of 16 bytes) under
// key and iv (16 bytes), then strips and validates PKCS#7 padding.
func AESCBCDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != blockSize {
		return nil, errors.New("cryptoprim: invalid iv length")
	}
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, errors.New("cryptoprim: ciphertext is not a multiple of the block size")
	}

	padded := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(padded, ciphertext)

	return unpad(padded)
}
