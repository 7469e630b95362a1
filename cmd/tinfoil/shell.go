package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tinfoil/internal/genpass"
	"tinfoil/internal/store"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive prompt against the database",
	Long: `shell unlocks the database and opens a REPL exposing get, set, del,
has, and exit, in the style of the original database console.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	applyDebugFlag()

	s, err := openUnlocked(databasePath())
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Println()
	fmt.Println("password manager database prompt -- type 'help' for a list of commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println("type 'help' for a list of commands")
			fmt.Println()
			continue
		}

		fields := strings.Fields(line)
		cmdName, cmdArgs := fields[0], fields[1:]

		switch cmdName {
		case "get":
			shellGet(s, cmdArgs)
		case "set":
			shellSet(s, cmdArgs)
		case "del":
			shellDel(s, cmdArgs)
		case "has":
			shellHas(s, cmdArgs)
		case "help":
			printShellHelp()
		case "exit", "quit":
			fmt.Println("shutting down database...")
			return nil
		default:
			fmt.Println("unrecognized command; type 'help' for a list of commands")
		}
		fmt.Println()
	}
}

func printShellHelp() {
	fmt.Println("get <key> [--show]   retrieve a value, copying it to the clipboard unless --show is given")
	fmt.Println("set <key> [value]    store a value, generating a random password if value is omitted")
	fmt.Println("del <key>            delete a value, after re-typing the key name to confirm")
	fmt.Println("has <key>            report whether a value exists for key")
	fmt.Println("exit                 shut down the database and exit")
}

func shellGet(s *store.Store, args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Println("usage: get <key> [--show]")
		return
	}
	show := false
	if len(args) == 2 {
		if strings.EqualFold(args[1], "--show") {
			show = true
		} else {
			fmt.Println("usage: get <key> [--show]")
			return
		}
	}

	value, err := s.Get(args[0])
	if err == store.ErrNotFound {
		fmt.Println("error: no record associated with that key!")
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if show {
		fmt.Printf("result: '%s'\n", value)
		return
	}
	if err := clipboard.WriteAll(value); err != nil {
		fmt.Println("error: could not copy to clipboard:", err)
		return
	}
	fmt.Println("result successfully copied to clipboard")
}

func shellSet(s *store.Store, args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Println("usage: set <key> [value]")
		return
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		generated, err := genpass.Generate(40, genpass.DefaultOptions())
		if err != nil {
			fmt.Println("error: could not generate a password:", err)
			return
		}
		value = generated
	}

	ok, err := s.Put(key, value)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !ok {
		fmt.Println("error: value already exists for this key!")
		return
	}
	fmt.Println("value successfully stored in the database")
}

func shellDel(s *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: del <key>")
		return
	}
	key := args[0]

	exists, err := s.Has(key)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !exists {
		fmt.Println("error: no record associated with that key!")
		return
	}

	fmt.Print("please re-type the name of the key to be permanently deleted\nconfirm: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	confirmation := strings.TrimSpace(scanner.Text())

	if confirmation != key {
		fmt.Println("error: confirmation mismatch -- no changes have been applied to the database!")
		return
	}
	if err := s.Delete(key); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("key successfully removed from the database")
}

func shellHas(s *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: has <key>")
		return
	}
	exists, err := s.Has(args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(exists)
}
