package cryptoprim

import (
	"bytes"
	"testing"
)

func TestSHA512KnownAnswer(t *testing.T) {
	// KAT: SHA-512("") per FIPS 180-4.
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	got := SHA512(nil)
	if hexString(got[:]) != want {
		t.Fatalf("SHA512(\"\") = %s, want %s", hexString(got[:]), want)
	}
}

func TestCSPRNGLengthAndVariance(t *testing.T) {
	a, err := CSPRNG(32)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("len(a) = %d, want 32", len(a))
	}

	b, err := CSPRNG(32)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two independent CSPRNG(32) calls produced identical output")
	}
}

// TestCSPRNGMonobit is a lightweight randomness smoke test: across a large
// sample, roughly half the bits should be set. This is not a substitute for
// a real statistical test suite, just a sanity check against a broken
// generator (e.g. one that always returns zero bytes).
func TestCSPRNGMonobit(t *testing.T) {
	sample, err := CSPRNG(4096)
	if err != nil {
		t.Fatalf("CSPRNG: %v", err)
	}

	ones := 0
	for _, b := range sample {
		for i := 0; i < 8; i++ {
			if (b>>i)&1 == 1 {
				ones++
			}
		}
	}

	total := len(sample) * 8
	ratio := float64(ones) / float64(total)
	if ratio < 0.45 || ratio > 0.55 {
		t.Fatalf("monobit ratio %.4f outside [0.45, 0.55] (ones=%d total=%d)", ratio, ones, total)
	}
}

func TestScryptDerivesRequestedLength(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key, err := Scrypt([]byte("hunter2"), salt, 1<<14, 8, 1, 96)
	if err != nil {
		t.Fatalf("Scrypt: %v", err)
	}
	if len(key) != 96 {
		t.Fatalf("len(key) = %d, want 96", len(key))
	}
}

func TestScryptIsDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1, err := Scrypt([]byte("hunter2"), salt, 1<<14, 8, 1, 32)
	if err != nil {
		t.Fatalf("Scrypt: %v", err)
	}
	k2, err := Scrypt([]byte("hunter2"), salt, 1<<14, 8, 1, 32)
	if err != nil {
		t.Fatalf("Scrypt: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("Scrypt produced different output for identical inputs")
	}
}

func TestScryptDifferentPasswordsDiverge(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1, err := Scrypt([]byte("hunter2"), salt, 1<<14, 8, 1, 32)
	if err != nil {
		t.Fatalf("Scrypt: %v", err)
	}
	k2, err := Scrypt([]byte("Hunter2"), salt, 1<<14, 8, 1, 32)
	if err != nil {
		t.Fatalf("Scrypt: %v", err)
	}
	if bytes.Equal(k1, k2) {
		t.Fatal("different passwords produced identical derived keys")
	}
}

func TestHMACSHA512VerifyRoundTrip(t *testing.T) {
	key := []byte("master-hmac-key")
	data := []byte("iv-and-ciphertext-bytes")

	tag := HMACSHA512(key, data)
	if !HMACVerify(key, data, tag[:]) {
		t.Fatal("HMACVerify rejected a valid tag")
	}

	tampered := tag
	tampered[0] ^= 0xFF
	if HMACVerify(key, data, tampered[:]) {
		t.Fatal("HMACVerify accepted a tampered tag")
	}
}

func TestHMACVerifyRejectsWrongLengthTag(t *testing.T) {
	key := []byte("k")
	data := []byte("d")
	if HMACVerify(key, data, []byte("too-short")) {
		t.Fatal("HMACVerify accepted a tag of the wrong length")
	}
}

func hexString(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0f]
	}
	return string(out)
}
