package cryptoprim

import (
	"bytes"
	"testing"
)

func aes256Key(t *testing.T) []byte {
	t.Helper()
	key, err := CSPRNG(32)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}
	return key
}

func TestAESCBCRoundTrip(t *testing.T) {
	key := aes256Key(t)
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	iv, ciphertext, err := AESCBCEncrypt(key, plaintext)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}
	if len(iv) != 16 {
		t.Fatalf("len(iv) = %d, want 16", len(iv))
	}
	if len(ciphertext)%16 != 0 || len(ciphertext) == 0 {
		t.Fatalf("len(ciphertext) = %d, want positive multiple of 16", len(ciphertext))
	}

	decrypted, err := AESCBCDecrypt(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("AESCBCDecrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestAESCBCEncryptRandomIVPerCall(t *testing.T) {
	key := aes256Key(t)
	plaintext := []byte("same plaintext every time")

	iv1, ct1, err := AESCBCEncrypt(key, plaintext)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}
	iv2, ct2, err := AESCBCEncrypt(key, plaintext)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}

	if bytes.Equal(iv1, iv2) {
		t.Fatal("two encryptions of the same plaintext produced the same IV")
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatal("two encryptions of the same plaintext produced the same ciphertext")
	}
}

func TestAESCBCPaddingAddsFullBlockWhenAligned(t *testing.T) {
	key := aes256Key(t)
	// Exactly one block already.
	plaintext := bytes.Repeat([]byte{0x41}, 16)

	_, ciphertext, err := AESCBCEncrypt(key, plaintext)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}
	if len(ciphertext) != 32 {
		t.Fatalf("len(ciphertext) = %d, want 32 (one extra padding block)", len(ciphertext))
	}
}

func TestAESCBCEmptyPlaintext(t *testing.T) {
	key := aes256Key(t)

	iv, ciphertext, err := AESCBCEncrypt(key, nil)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}
	if len(ciphertext) != 16 {
		t.Fatalf("len(ciphertext) = %d, want 16", len(ciphertext))
	}

	decrypted, err := AESCBCDecrypt(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("AESCBCDecrypt: %v", err)
	}
	if len(decrypted) != 0 {
		t.Fatalf("decrypted = %q, want empty", decrypted)
	}
}

func TestAESCBCDecryptRejectsBadCiphertextLength(t *testing.T) {
	key := aes256Key(t)
	iv, err := CSPRNG(16)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}

	if _, err := AESCBCDecrypt(key, iv, []byte("not a block multiple")); err == nil {
		t.Fatal("AESCBCDecrypt accepted a ciphertext of invalid length")
	}
}

func TestAESCBCDecryptRejectsBadPadding(t *testing.T) {
	key := aes256Key(t)
	plaintext := []byte("some plaintext to encrypt")

	iv, ciphertext, err := AESCBCEncrypt(key, plaintext)
	if err != nil {
		t.Fatalf("AESCBCEncrypt: %v", err)
	}

	// Corrupt the last ciphertext block so CBC decryption yields garbage
	// padding bytes on the final plaintext block.
	ciphertext[len(ciphertext)-1] ^= 0xFF

	if _, err := AESCBCDecrypt(key, iv, ciphertext); err == nil {
		t.Fatal("AESCBCDecrypt accepted corrupted ciphertext with invalid padding")
	}
}
