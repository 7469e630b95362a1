// Package genpass is tinfoil's random password generator, a collaborator
// outside the core store per spec.md §1. It is supplemented from the
// original implementation's passwordgen.py, which drew characters from
// Python's random.SystemRandom (itself CSPRNG-backed); the Go equivalent
// and load-bearing choice is crypto/rand, since math/rand has no CSPRNG
// mode.
package genpass

import (
	cryptorand "crypto/rand"
	"errors"
	"math/big"

	"tinfoil/internal/cryptoprim"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	space       = " "
)

// Options controls which character classes Generate draws from. Letters
// are always included.
type Options struct {
	Digits       bool
	Special      bool
	Spaces       bool
}

// DefaultOptions matches the original passwordgen.py defaults: digits,
// punctuation, and spaces all included.
func DefaultOptions() Options {
	return Options{Digits: true, Special: true, Spaces: true}
}

// Generate returns a random password of the given length, drawing each
// character uniformly from the requested character classes via
// crypto/rand.
func Generate(length int, opts Options) (string, error) {
	if length <= 0 {
		return "", errors.New("genpass: length must be positive")
	}

	charset := letters
	if opts.Digits {
		charset += digits
	}
	if opts.Special {
		charset += punctuation
	}
	if opts.Spaces {
		charset += space
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := cryptorand.Int(cryptorand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}

	return string(out), nil
}

// EntropySelfCheck is a lightweight statistical sanity check over the
// underlying CSPRNG, run by cmd/tinfoil's bench command before it draws
// its random inputs; Generate itself does not call it. It
// hashes a large CSPRNG sample with SHA3-512 and checks the digest is not
// degenerate (all-zero), which would indicate a broken entropy source.
// Adapted from the teacher's kdf-compliance.go / phase3-sha3-updated.go,
// which import golang.org/x/crypto/sha3 for exactly this kind of
// self-test, retargeted here since those files' bespoke KDF/MAC scheme
// itself was dropped (see DESIGN.md).
func EntropySelfCheck() error {
	sample, err := cryptoprim.CSPRNG(4096)
	if err != nil {
		return err
	}

	digest := sha3Sum512(sample)
	allZero := true
	for _, b := range digest {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return errors.New("genpass: entropy self-check failed (degenerate digest)")
	}
	return nil
}
