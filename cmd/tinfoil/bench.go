package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinfoil/internal/bench"
	"tinfoil/internal/genpass"
)

var (
	benchMaxRAM  float64
	benchMaxTime float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Find the largest Scrypt work factor that fits a RAM and time budget",
	Long: `bench scans candidate Scrypt N values as powers of two and reports
the largest one that derives a key within the given time budget, without
exceeding the given RAM budget. Use the result with init --scrypt-n-exponent.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().Float64Var(&benchMaxRAM, "max-ram-gb", 6, "maximum RAM usage in GB")
	benchCmd.Flags().Float64Var(&benchMaxTime, "max-seconds", 5, "maximum wait time in seconds")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	// bench draws its placeholder password and salt from the CSPRNG, so it
	// runs the entropy self-check first rather than assuming the CSPRNG is
	// healthy. It is the only command that runs this check.
	if err := genpass.EntropySelfCheck(); err != nil {
		return fmt.Errorf("entropy self-check failed: %w", err)
	}

	fmt.Println("--- scrypt parameter determination ---")
	fmt.Println()

	result, err := bench.FindOptimalN(benchMaxRAM, benchMaxTime, bench.DefaultR)
	if err != nil {
		return err
	}

	for _, sample := range result.Samples {
		fmt.Printf("N = %d (2^%d); time = %s\n", sample.N, sample.NExponent, sample.Elapsed)
	}
	fmt.Println()

	if !result.Found {
		return fmt.Errorf("no valid values for N: increase the RAM or time allowance")
	}
	fmt.Printf("result: optimal N = %d\n", result.OptimalN)
	return nil
}
