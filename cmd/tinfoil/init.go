package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinfoil/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and initialize a new tinfoil database",
	RunE:  runInit,
}

var (
	initScryptNExponent int
	initScryptR         int
	initScryptP         int
)

func init() {
	initCmd.Flags().IntVar(&initScryptNExponent, "scrypt-n-exponent", 19,
		"Scrypt work factor as a power of two (N = 2^exponent); see the bench command")
	initCmd.Flags().IntVar(&initScryptR, "scrypt-r", store.DefaultScryptR, "Scrypt memory factor")
	initCmd.Flags().IntVar(&initScryptP, "scrypt-p", store.DefaultScryptP, "Scrypt parallelism factor")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	if initScryptNExponent < 14 || initScryptNExponent > 23 {
		return fmt.Errorf("scrypt-n-exponent must be between 14 and 23 (inclusive)")
	}

	s, err := store.New(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	initialized, err := s.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		fmt.Println("database already initialized!")
		return nil
	}

	fmt.Println()
	fmt.Println("--- database first-time setup ---")
	fmt.Println()
	password, err := promptNewPassword()
	if err != nil {
		return err
	}

	params := store.Params{
		ScryptN:     1 << uint(initScryptNExponent),
		ScryptR:     initScryptR,
		ScryptP:     initScryptP,
		AESKeySize:  store.DefaultAESKeySize,
		HMACKeySize: store.DefaultHMACKeySize,
	}

	fmt.Println("setting up database...")
	if err := s.Initialize(password, params); err != nil {
		return err
	}
	fmt.Println("database successfully initialized!")
	return nil
}
