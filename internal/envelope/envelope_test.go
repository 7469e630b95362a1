package envelope

import (
	"bytes"
	"testing"

	"tinfoil/internal/cryptoprim"
)

func testKeys(t *testing.T) (aesKey, hmacKey []byte) {
	t.Helper()
	aesKey, err := cryptoprim.CSPRNG(32)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}
	hmacKey, err = cryptoprim.CSPRNG(64)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}
	return aesKey, hmacKey
}

func TestSealOpenRoundTrip(t *testing.T) {
	aesKey, hmacKey := testKeys(t)
	plaintext := []byte("jX40TyIOkUMMGYLePilPb8BwxSwkYiJ")

	env, err := Seal(plaintext, aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(env.IV) != 16 || len(env.Tag) != 64 {
		t.Fatalf("unexpected envelope shape: iv=%d tag=%d", len(env.IV), len(env.Tag))
	}

	got, err := Open(env, aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestOpenRejectsWrongHMACKeyWithoutDecrypting(t *testing.T) {
	aesKey, hmacKey := testKeys(t)
	_, wrongHMACKey := testKeys(t)

	env, err := Seal([]byte("secret value"), aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if _, err := Open(env, aesKey, wrongHMACKey); err != ErrAuthenticationFailed {
		t.Fatalf("Open error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	aesKey, hmacKey := testKeys(t)

	env, err := Seal([]byte("secret value"), aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	tampered := env
	tampered.Ciphertext = append([]byte{}, env.Ciphertext...)
	tampered.Ciphertext[0] ^= 0xFF

	if _, err := Open(tampered, aesKey, hmacKey); err != ErrAuthenticationFailed {
		t.Fatalf("Open error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestOpenRejectsTamperedIV(t *testing.T) {
	aesKey, hmacKey := testKeys(t)

	env, err := Seal([]byte("secret value"), aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	tampered := env
	tampered.IV = append([]byte{}, env.IV...)
	tampered.IV[0] ^= 0xFF

	if _, err := Open(tampered, aesKey, hmacKey); err != ErrAuthenticationFailed {
		t.Fatalf("Open error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestOpenRejectsTamperedTag(t *testing.T) {
	aesKey, hmacKey := testKeys(t)

	env, err := Seal([]byte("secret value"), aesKey, hmacKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	tampered := env
	tampered.Tag = append([]byte{}, env.Tag...)
	tampered.Tag[len(tampered.Tag)-1] ^= 0xFF

	if _, err := Open(tampered, aesKey, hmacKey); err != ErrAuthenticationFailed {
		t.Fatalf("Open error = %v, want ErrAuthenticationFailed", err)
	}
}
