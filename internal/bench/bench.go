// Package bench implements the Scrypt parameter benchmarking tool, a
// collaborator outside the core store per spec.md §1. Supplemented from
// the original implementation's tinfoil/speedtest.py: given a RAM budget
// and a time budget, it scans candidate N values (as powers of two) and
// reports the largest one whose derivation completes within budget.
package bench

import (
	"errors"
	"math"
	"time"

	"tinfoil/internal/cryptoprim"
)

// MinimumNExponent mirrors speedtest.py's MINIMUM_N: no implementation of
// this benchmark should recommend anything smaller.
const MinimumNExponent = 14

// DefaultR matches speedtest.py's DEFAULT_R.
const DefaultR = 8

// Sample is one (N, elapsed) measurement taken while searching for the
// optimal N.
type Sample struct {
	NExponent int
	N         int
	Elapsed   time.Duration
}

// Result is the outcome of FindOptimalN.
type Result struct {
	Samples   []Sample
	OptimalN  int // 0 if no exponent in range fit within the time budget
	Found     bool
}

// MaxNExponentForRAM returns the largest N exponent whose Scrypt memory
// footprint (128 * r * N bytes) fits within maxRAMGigabytes, mirroring
// speedtest.py's get_max_N.
func MaxNExponentForRAM(maxRAMGigabytes float64, r int) int {
	bytesAvailable := maxRAMGigabytes * 1e9
	return int(math.Floor(math.Log2(bytesAvailable / float64(128*r))))
}

// FindOptimalN derives a random 40-byte password under an 8-byte salt
// (mirroring speedtest.py's placeholder inputs) at increasing powers of
// two, starting at MinimumNExponent, until either a derivation exceeds
// maxSeconds or the exponent one below MaxNExponentForRAM's result has
// been tried. It returns the largest N that stayed within budget.
func FindOptimalN(maxRAMGigabytes, maxSeconds float64, r int) (Result, error) {
	maxExponent := MaxNExponentForRAM(maxRAMGigabytes, r)
	if maxExponent < MinimumNExponent {
		return Result{}, errors.New("bench: no valid N values fit the given RAM budget")
	}

	password, err := cryptoprim.CSPRNG(40)
	if err != nil {
		return Result{}, err
	}
	salt, err := cryptoprim.CSPRNG(8)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for exp := MinimumNExponent; exp < maxExponent; exp++ {
		n := 1 << uint(exp)

		start := time.Now()
		if _, err := cryptoprim.Scrypt(password, salt, n, r, 1, 32); err != nil {
			return Result{}, err
		}
		elapsed := time.Since(start)

		result.Samples = append(result.Samples, Sample{NExponent: exp, N: n, Elapsed: elapsed})

		if elapsed.Seconds() > maxSeconds {
			if exp-1 >= MinimumNExponent {
				result.OptimalN = 1 << uint(exp-1)
				result.Found = true
			}
			return result, nil
		}
	}

	// Every exponent up to maxExponent stayed within budget.
	lastExp := maxExponent - 1
	if lastExp >= MinimumNExponent {
		result.OptimalN = 1 << uint(lastExp)
		result.Found = true
	}
	return result, nil
}
