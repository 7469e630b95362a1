package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tinfoil/internal/store"
)

var hasCmd = &cobra.Command{
	Use:   "has <key>",
	Short: "Report whether a value is stored under key",
	Args:  cobra.ExactArgs(1),
	RunE:  runHas,
}

func init() {
	rootCmd.AddCommand(hasCmd)
}

func runHas(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	// Has does not require unlocking; see internal/store's Open Question
	// decision on this.
	s, err := store.New(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	exists, err := s.Has(args[0])
	if err != nil {
		return err
	}
	fmt.Println(exists)
	if !exists {
		os.Exit(1)
	}
	return nil
}
