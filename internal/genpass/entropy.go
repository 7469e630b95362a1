package genpass

import "golang.org/x/crypto/sha3"

func sha3Sum512(data []byte) [64]byte {
	return sha3.Sum512(data)
}
