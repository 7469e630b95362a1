package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinfoil/internal/genpass"
)

var putGenerateLength int

var putCmd = &cobra.Command{
	Use:   "put <key> [value]",
	Short: "Store a value, generating a random password when value is omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPut,
}

func init() {
	putCmd.Flags().IntVar(&putGenerateLength, "generate-length", 40, "length of the generated password when value is omitted")
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	s, err := openUnlocked(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		generated, err := genpass.Generate(putGenerateLength, genpass.DefaultOptions())
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		value = generated
	}

	ok, err := s.Put(key, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value already exists for key %q", key)
	}
	fmt.Println("value successfully stored in the database")
	return nil
}
