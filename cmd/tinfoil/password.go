package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword prompts on stderr and reads a line from stdin without
// echoing it, mirroring tinfoilcli.py's ask_database_password (there built
// on Python's getpass module). An empty result is returned as "" with no
// error; callers that require a non-blank password check for that
// themselves, the same way the original loops on a blank entry.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Piped stdin, e.g. under test or in scripted use: fall back to a
		// plain line read instead of failing outright.
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

// promptNewPassword asks for a master password twice and requires the two
// entries to match, exactly as ask_database_parameters loops in
// tinfoilcli.py until confirmation == password.
func promptNewPassword() (string, error) {
	for {
		first, err := readPassword("database master password: ")
		if err != nil {
			return "", err
		}
		if first == "" {
			fmt.Fprintln(os.Stderr, "database master password cannot be blank!")
			continue
		}

		second, err := readPassword("please re-enter the master password you chose: ")
		if err != nil {
			return "", err
		}
		if first != second {
			fmt.Fprintln(os.Stderr, "passwords did not match!")
			continue
		}
		return first, nil
	}
}

// readLine prompts on stderr and reads one visible line from stdin,
// mirroring inputlib.ask_string for prompts that are not sensitive, such as
// the re-typed key name required by delete confirmation.
func readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
