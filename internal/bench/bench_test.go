package bench

import "testing"

func TestMaxNExponentForRAM(t *testing.T) {
	// 1 GB of RAM, r=8: matches the worked example in the original
	// speedtest.py docstring (log2(10^9 / (128*8))).
	got := MaxNExponentForRAM(1, DefaultR)
	if got < 19 || got > 21 {
		t.Fatalf("MaxNExponentForRAM(1, 8) = %d, want roughly 20", got)
	}
}

func TestFindOptimalNRejectsTooSmallBudget(t *testing.T) {
	// A tiny RAM budget can't even reach MinimumNExponent.
	_, err := FindOptimalN(0.0000001, 5, DefaultR)
	if err == nil {
		t.Fatal("FindOptimalN succeeded with an impossibly small RAM budget")
	}
}

func TestFindOptimalNStopsWithinTimeBudget(t *testing.T) {
	// A generous RAM budget but a near-zero time budget should stop at or
	// just past MinimumNExponent and report samples taken along the way.
	result, err := FindOptimalN(4, 0.001, DefaultR)
	if err != nil {
		t.Fatalf("FindOptimalN: %v", err)
	}
	if len(result.Samples) == 0 {
		t.Fatal("FindOptimalN returned no samples")
	}
	if result.Found && result.OptimalN < 1<<MinimumNExponent {
		t.Fatalf("OptimalN = %d, want at least 2^%d", result.OptimalN, MinimumNExponent)
	}
}
