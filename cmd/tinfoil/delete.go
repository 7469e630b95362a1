package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinfoil/internal/store"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Aliases: []string{"del"},
	Short:   "Delete a stored value",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the re-typed key confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	applyDebugFlag()
	key := args[0]

	// Has/Delete are legal on an initialized-but-locked database, so delete
	// does not require unlocking, matching the original's check_record /
	// delete_record pair.
	s, err := store.New(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	exists, err := s.Has(key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("no record associated with key %q", key)
	}

	if !deleteForce {
		confirmation, err := readLine(fmt.Sprintf("re-type %q to confirm deletion: ", key))
		if err != nil {
			return err
		}
		if confirmation != key {
			return fmt.Errorf("confirmation mismatch -- no changes have been applied to the database")
		}
	}

	if err := s.Delete(key); err != nil {
		return err
	}
	fmt.Println("key successfully removed from the database")
	return nil
}
