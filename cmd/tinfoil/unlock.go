package main

import (
	"fmt"

	"tinfoil/internal/store"
)

// openUnlocked opens the database at path, failing if it has not been
// initialized yet, then loops prompting for the master password until
// Unlock succeeds, mirroring main()'s password loop in tinfoilcli.py.
func openUnlocked(path string) (*store.Store, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}

	initialized, err := s.IsInitialized()
	if err != nil {
		s.Close()
		return nil, err
	}
	if !initialized {
		s.Close()
		return nil, fmt.Errorf("%s is not initialized yet; run `tinfoil init` first", path)
	}

	for {
		password, err := readPassword("database master password: ")
		if err != nil {
			s.Close()
			return nil, err
		}
		if password == "" {
			fmt.Println("master password cannot be blank!")
			continue
		}

		ok, err := s.Unlock(password)
		if err != nil {
			s.Close()
			return nil, err
		}
		if ok {
			fmt.Println("database successfully unlocked!")
			return s, nil
		}
		fmt.Println("incorrect master password!")
	}
}
