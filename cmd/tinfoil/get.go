package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tinfoil/internal/store"
)

var getShow bool

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve a stored value (copies to the clipboard by default)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVarP(&getShow, "show", "s", false, "print the value instead of copying it to the clipboard")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	s, err := openUnlocked(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	value, err := s.Get(args[0])
	if err == store.ErrNotFound {
		return fmt.Errorf("no record associated with key %q", args[0])
	}
	if err != nil {
		return err
	}

	if getShow {
		fmt.Println(value)
		return nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Println("result successfully copied to clipboard")
	return nil
}
